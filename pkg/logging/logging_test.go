package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatJSON)
	logger.Debug("hidden")
	logger.Info("Split saved", "transaction_id", "t-1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	if entry["msg"] != "Split saved" || entry["transaction_id"] != "t-1" {
		t.Errorf("Unexpected entry: %v", entry)
	}
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, FormatPretty)
	logger.Debug("Row updated", "field", "amount")

	out := buf.String()
	if !strings.Contains(out, "Row updated") || !strings.Contains(out, "amount") {
		t.Errorf("Unexpected output: %q", out)
	}
}
