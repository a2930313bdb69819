package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})
	log.Info("patched stylesheet", "path", "src/index.css")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "patched stylesheet" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["path"] != "src/index.css" {
		t.Fatalf("path = %v", entry["path"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "text", Output: &buf})
	log.Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("unexpected text output: %q", buf.String())
	}
}

func TestNew_AutoFallsBackToJSONForNonTTY(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "auto", Output: &buf})
	log.Info("auto")
	if !json.Valid(buf.Bytes()) {
		t.Fatalf("expected JSON for non-TTY writer, got %q", buf.String())
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "text", Output: &buf})
	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info record not filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrettyHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, slog.LevelDebug)
	log := slog.New(h)
	log.Info("generated theme", "mode", "dark")

	out := buf.String()
	if !strings.Contains(out, "generated theme") {
		t.Fatalf("message missing: %q", out)
	}
	if !strings.Contains(out, "mode") || !strings.Contains(out, "dark") {
		t.Fatalf("attr missing: %q", out)
	}
	if !strings.Contains(out, "INF") {
		t.Fatalf("level tag missing: %q", out)
	}
}

func TestPrettyHandler_Groups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelDebug)).WithGroup("css")
	log.Info("merged", "vars", 19)
	if !strings.Contains(buf.String(), "css.vars") {
		t.Fatalf("grouped key missing: %q", buf.String())
	}
}

func TestWithSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})
	log.WithSource("logo.png").Info("extracting")

	if !strings.Contains(buf.String(), `"source":"logo.png"`) {
		t.Fatalf("source attr missing: %q", buf.String())
	}
}
