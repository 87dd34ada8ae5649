package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Error("failed: %s", "boom")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries; want 2", len(entries))
	}
	if entries[0]["message"] != "shown 2" {
		t.Errorf("message = %v; want %q", entries[0]["message"], "shown 2")
	}
	if entries[0]["level"] != "info" {
		t.Errorf("level = %v; want info", entries[0]["level"])
	}
	if entries[1]["level"] != "error" {
		t.Errorf("level = %v; want error", entries[1]["level"])
	}
	if entries[0]["component"] != component {
		t.Errorf("component = %v; want %q", entries[0]["component"], component)
	}
}

func TestLogger_None(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelNone)
	l.Error("nothing")

	if buf.Len() != 0 {
		t.Errorf("LevelNone wrote %q", buf.String())
	}
	if l.Enabled(LevelError) {
		t.Error("Enabled(LevelError) = true for LevelNone")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug).With("run", "abc")
	l.Debug("compare")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries; want 1", len(entries))
	}
	if entries[0]["run"] != "abc" {
		t.Errorf("run = %v; want abc", entries[0]["run"])
	}
}

func TestLogger_SetOutputKeepsFields(t *testing.T) {
	l := New(&bytes.Buffer{}, LevelInfo).With("objective", "b1")

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Info("moved")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["objective"] != "b1" {
		t.Errorf("entries = %v; want one entry with objective=b1", entries)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelNone, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevel_String(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("LevelWarn.String() = %q; want WARN", LevelWarn.String())
	}
	if LevelNone.String() != "" {
		t.Errorf("LevelNone.String() = %q; want empty", LevelNone.String())
	}
}
