package allocation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// leadingFloat matches the longest numeric prefix a browser's parseFloat
// would accept, so "12abc" reads as 12 and "abc" reads as nothing.
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var currencyNoise = strings.NewReplacer("$", "", ",", "")

var printer = message.NewPrinter(language.AmericanEnglish)

// ParseAmount coerces user-entered currency text to a number.
// Dollar signs, commas and whitespace are ignored; anything unparseable is 0.
func ParseAmount(s string) float64 {
	s = currencyNoise.Replace(s)
	s = strings.Join(strings.Fields(s), "")
	return parseLeadingFloat(s)
}

// ParsePercent coerces user-entered percentage text to a number.
// Values are not clamped: 120 and -5 are returned as is.
func ParsePercent(s string) float64 {
	return parseLeadingFloat(strings.TrimSpace(s))
}

func parseLeadingFloat(s string) float64 {
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// FormatAmount renders a dollar amount the way the dashboard shows it, e.g. "$1,234.50".
// Values that round to zero cents never carry a minus sign.
func FormatAmount(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	if v < 0 {
		return "-" + printer.Sprintf("$%.2f", -v)
	}
	return printer.Sprintf("$%.2f", v)
}

// FormatPercent renders a percentage with one decimal, e.g. "12.5%".
func FormatPercent(v float64) string {
	if math.Abs(v) < 0.05 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
