package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"error":   ErrorLevel,
		"fatal":   FatalLevel,
		"info":    InfoLevel,
		"":        InfoLevel,
		"verbose": InfoLevel,
	}
	for input, expect := range cases {
		if got := ParseLevel(input); got != expect {
			t.Fatalf("ParseLevel(%q) = %s, want %s", input, got, expect)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("TEXT") != FormatText {
		t.Fatalf("expected text format")
	}
	if ParseFormat("json") != FormatJSON || ParseFormat("") != FormatJSON {
		t.Fatalf("expected json format by default")
	}
}

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Format: FormatText}) })

	Configure(Config{Level: InfoLevel, Format: FormatJSON, Output: &buf})
	Info().Str("route", "/students").Msg("hello")
	Debug().Msg("dropped")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" || entry["route"] != "/students" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["service"] != "student-registry" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info global level, got %s", zerolog.GlobalLevel())
	}
}
