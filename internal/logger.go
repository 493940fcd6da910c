package internal

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel orders log lines by how much a user of the chat client needs them
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var levelNames = map[LogLevel]string{
	LogLevelError: "error",
	LogLevelWarn:  "warn",
	LogLevelInfo:  "info",
	LogLevelDebug: "debug",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLogLevel maps a config or environment value to a level. The empty
// string selects info.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return LogLevelInfo, nil
	case "error":
		return LogLevelError, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "debug":
		return LogLevelDebug, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q (want error, warn, info or debug)", s)
}

var (
	logLevel = LogLevelInfo
	logger   = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLogLevel sets the level for every component of the client
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// SetVerbose switches between debug and info; --verbose maps to it
func SetVerbose(verbose bool) {
	if verbose {
		SetLogLevel(LogLevelDebug)
	} else {
		SetLogLevel(LogLevelInfo)
	}
}

// SetLogOutput redirects log output. The chat screen points it at
// labchat.log so log lines never land on top of the transcript.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logger.SetOutput(w)
}

func logAt(level LogLevel, tag, format string, args ...interface{}) {
	if logLevel >= level {
		logger.Printf(tag+" "+format, args...)
	}
}

// LogError logs a failure the user should see, such as an unusable store
func LogError(format string, args ...interface{}) {
	logAt(LogLevelError, "[ERROR]", format, args...)
}

// LogWarn logs a degraded but working state
func LogWarn(format string, args ...interface{}) {
	logAt(LogLevelWarn, "[WARN]", format, args...)
}

// LogInfo logs session and backend milestones
func LogInfo(format string, args ...interface{}) {
	logAt(LogLevelInfo, "[INFO]", format, args...)
}

// LogDebug logs request and directive details
func LogDebug(format string, args ...interface{}) {
	logAt(LogLevelDebug, "[DEBUG]", format, args...)
}
