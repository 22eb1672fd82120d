package capnslog

import (
	"bytes"
	"strings"
	"testing"
)

func TestCapnslogCaptureAtInfo(t *testing.T) {
	var buf bytes.Buffer
	SetFormatter(NewStringFormatter(&buf))

	plog := NewPackageLogger("github.com/ryunzip/ryunzip/flate", "flate")
	repo := MustRepoLogger("github.com/ryunzip/ryunzip/flate")
	repo.SetGlobalLogLevel(ERROR)
	plog.Info(BaseLogEntry("at error level, should be dropped"))
	if buf.Len() != 0 {
		t.Fatalf("expected no output at ERROR level, got %q", buf.String())
	}

	repo.SetGlobalLogLevel(INFO)
	plog.Info(BaseLogEntry("at info level, should print"))
	if !strings.Contains(buf.String(), "at info level") {
		t.Fatalf("expected output to contain message, got %q", buf.String())
	}
}

func TestCapnslogStraight(t *testing.T) {
	var buf bytes.Buffer
	SetFormatter(NewStringFormatter(&buf))
	plog := NewPackageLogger("github.com/ryunzip/ryunzip/capnslog-test", "main")
	plog.Error(BaseLogEntry("error"))
	plog.Print("print")
	plog.Info(BaseLogEntry("info"))
	plog.Debug(BaseLogEntry("debug should be dropped at default INFO level"))

	got := buf.String()
	for _, want := range []string{"error", "print", "info"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
	if strings.Contains(got, "debug should be dropped") {
		t.Errorf("debug line leaked through default INFO level: %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"CRITICAL": CRITICAL,
		"ERROR":    ERROR,
		"WARNING":  WARNING,
		"NOTICE":   NOTICE,
		"INFO":     INFO,
		"DEBUG":    DEBUG,
		"TRACE":    TRACE,
	}
	for s, want := range cases {
		got, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseLevel("GARBAGE"); err == nil {
		t.Error("expected error for unknown level string")
	}
}
