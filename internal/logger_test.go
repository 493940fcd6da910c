package internal

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLogLevel(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetLogLevel(LogLevelDebug)
	if logLevel != LogLevelDebug {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetLogLevel(LogLevelError)
	if logLevel != LogLevelError {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelError", logLevel)
	}
}

func TestSetVerbose(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("SetVerbose(false) logLevel = %v, want LogLevelInfo", logLevel)
	}
}

func TestLogFunctions(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	SetLogLevel(LogLevelWarn)
	LogError("test error message")
	LogWarn("test warning message")
	LogInfo("test info message")
	LogDebug("test debug message")

	out := buf.String()
	for _, want := range []string{"[ERROR] test error message", "[WARN] test warning message"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"[INFO]", "[DEBUG]"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("log output should not contain %s at warn level:\n%s", unwanted, out)
		}
	}
}

func TestSetLogOutput_Nil(t *testing.T) {
	SetLogOutput(nil)
	defer SetLogOutput(os.Stderr)

	// discarded, must not panic
	LogError("dropped")
}

func TestLogLevels(t *testing.T) {
	// Test that log levels are properly defined
	if LogLevelError >= LogLevelWarn {
		t.Error("LogLevelError should be less than LogLevelWarn")
	}
	if LogLevelWarn >= LogLevelInfo {
		t.Error("LogLevelWarn should be less than LogLevelInfo")
	}
	if LogLevelInfo >= LogLevelDebug {
		t.Error("LogLevelInfo should be less than LogLevelDebug")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "", want: LogLevelInfo},
		{in: "info", want: LogLevelInfo},
		{in: " DEBUG ", want: LogLevelDebug},
		{in: "warning", want: LogLevelWarn},
		{in: "warn", want: LogLevelWarn},
		{in: "error", want: LogLevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	if got := LogLevelWarn.String(); got != "warn" {
		t.Errorf("String() = %q, want warn", got)
	}
	if got := LogLevel(9).String(); got != "LogLevel(9)" {
		t.Errorf("String() = %q, want LogLevel(9)", got)
	}
}
