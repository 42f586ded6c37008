package allocation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1500", 1500},
		{"$1,500.25", 1500.25},
		{" $ 2 000 ", 2000},
		{"$abc", 0},
		{"", 0},
		{"12abc", 12},
		{"-300", -300},
		{".5", 0.5},
		{"1e3", 1000},
		{"1e999", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.in), "ParseAmount(%q)", tt.in)
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{" 12.5 ", 12.5},
		{"150", 150},
		{"-5", -5},
		{"50%", 50},
		{"abc", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePercent(tt.in), "ParsePercent(%q)", tt.in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(12.46))
	assert.Equal(t, "100.0%", FormatPercent(100))
	assert.Equal(t, "$1,234.50", FormatAmount(1234.5))
	assert.Equal(t, "-$20.00", FormatAmount(-20))
}

func TestFormatNearZeroHasNoSign(t *testing.T) {
	assert.Equal(t, "$0.00", FormatAmount(-0.001))
	assert.Equal(t, "$0.00", FormatAmount(math.Copysign(0, -1)))
	assert.Equal(t, "-$0.01", FormatAmount(-0.006))
	assert.Equal(t, "0.0%", FormatPercent(-0.01))
}
