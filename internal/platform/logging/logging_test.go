package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	charmLog "github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    charmLog.Level
		wantErr bool
	}{
		"empty":   {in: "", want: charmLog.InfoLevel},
		"debug":   {in: "debug", want: charmLog.DebugLevel},
		"upper":   {in: "ERROR", want: charmLog.ErrorLevel},
		"warning": {in: "warning", want: charmLog.WarnLevel},
		"unknown": {in: "chatty", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(&out, Options{Level: "warn", Prefix: "web"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("info record logged at warn level: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "value") {
		t.Fatalf("warn record missing: %q", got)
	}
}

func TestNewJSONConsole(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(&out, Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("started", "addr", ":8080")

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &record); err != nil {
		t.Fatalf("console output is not json: %v (%q)", err, out.String())
	}
	if record["msg"] != "started" || record["addr"] != ":8080" {
		t.Fatalf("record = %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(nil, Options{Format: "xml"}); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestNewWritesFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.log")
	var console bytes.Buffer
	logger, err := New(&console, Options{File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.With("component", "contact").Info("contact submission sent", "submission_id", "abc")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		t.Fatal("log file is empty")
	}
	var record map[string]any
	if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["component"] != "contact" || record["submission_id"] != "abc" {
		t.Fatalf("record = %v", record)
	}
	if !strings.Contains(console.String(), "contact submission sent") {
		t.Fatalf("console missing record: %q", console.String())
	}
}

func TestNewFileSinkKeepsGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.log")
	logger, err := New(io.Discard, Options{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.WithGroup("request").Debug("gallery fragment", "path", "/gallery/1")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record struct {
		Level   string            `json:"level"`
		Request map[string]string `json:"request"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("decode log line %q: %v", data, err)
	}
	if record.Level != "DEBUG" || record.Request["path"] != "/gallery/1" {
		t.Fatalf("record = %+v", record)
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	logger := Discard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("discard logger enabled for errors")
	}
}
