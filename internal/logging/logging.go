package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ANSI color codes for terminal output
const (
	colorRed    = "\033[97;41m" // White text on red background
	colorGreen  = "\033[97;42m" // White text on green background
	colorYellow = "\033[90;43m" // Black text on yellow background
	colorBlue   = "\033[97;44m" // White text on blue background
	colorCyan   = "\033[97;46m" // White text on cyan background
	colorReset  = "\033[0m"
)

// Log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

type Logger struct {
	*log.Logger
	writer   *lumberjack.Logger
	minLevel int
	requests bool
}

func NewLogger(config *Config) (*Logger, error) {
	minLevel, ok := levelRank[strings.ToLower(config.Level)]
	if !ok {
		minLevel = levelRank[LevelInfo]
	}

	// Stdout only when no file is configured
	if config.File == "" {
		return &Logger{
			Logger:   log.New(os.Stdout, "", log.LstdFlags),
			minLevel: minLevel,
			requests: config.Requests,
		}, nil
	}

	// Expand home directory in log file path
	logFile := config.File
	if strings.HasPrefix(logFile, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		logFile = filepath.Join(homeDir, logFile[2:])
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Set up log rotation
	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   true,
	}

	// Write to both file and stdout
	multiWriter := io.MultiWriter(writer, os.Stdout)

	return &Logger{
		Logger:   log.New(multiWriter, "", log.LstdFlags),
		writer:   writer,
		minLevel: minLevel,
		requests: config.Requests,
	}, nil
}

// NewWriterLogger creates a logger that writes to w without rotation.
func NewWriterLogger(w io.Writer, level string) *Logger {
	minLevel, ok := levelRank[strings.ToLower(level)]
	if !ok {
		minLevel = levelRank[LevelInfo]
	}
	return &Logger{
		Logger:   log.New(w, "", log.LstdFlags),
		minLevel: minLevel,
	}
}

func (l *Logger) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

func (l *Logger) enabled(level string) bool {
	return levelRank[level] >= l.minLevel
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if !l.enabled(LevelDebug) {
		return
	}
	prefix := colorBlue + "[DEBUG]" + colorReset
	l.Printf(prefix+" "+format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	if !l.enabled(LevelInfo) {
		return
	}
	prefix := colorGreen + "[INFO]" + colorReset
	l.Printf(prefix+" "+format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	if !l.enabled(LevelWarn) {
		return
	}
	prefix := colorYellow + "[WARN]" + colorReset
	l.Printf(prefix+" "+format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	prefix := colorRed + "[ERROR]" + colorReset
	l.Printf(prefix+" "+format, v...)
}

// Error handling utilities
type ErrorWithContext struct {
	Err     error
	Context string
}

func (e *ErrorWithContext) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *ErrorWithContext) Unwrap() error {
	return e.Err
}

func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithContext{
		Err:     err,
		Context: context,
	}
}

// Common errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FormatHTTPMethod returns a colored string based on the HTTP method
func (l *Logger) FormatHTTPMethod(method string) string {
	var color string
	switch method {
	case http.MethodGet:
		color = colorBlue
	case http.MethodPost:
		color = colorCyan
	case http.MethodPut, http.MethodPatch:
		color = colorYellow
	case http.MethodDelete:
		color = colorRed
	default:
		color = colorBlue
	}
	return fmt.Sprintf("%s %s %s", color, method, colorReset)
}

// FormatHTTPStatus returns a colored string based on the status code
func (l *Logger) FormatHTTPStatus(status int) string {
	var color string
	switch {
	case status >= 500:
		color = colorRed
	case status >= 400:
		color = colorYellow
	case status >= 300:
		color = colorCyan
	case status >= 200:
		color = colorGreen
	default:
		color = colorBlue
	}
	return fmt.Sprintf("%s %d %s", color, status, colorReset)
}

// LogHTTPRequest logs an HTTP request with colored output
func (l *Logger) LogHTTPRequest(method, path, clientIP, requestID string, status, bytes int, latency string) {
	if !l.requests {
		return
	}

	l.Printf("[HTTP] %s | %15s | %-17s | %s | %s | %d bytes | %s",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		requestID,
		bytes,
		latency,
	)
}

// LogHTTPError logs an HTTP error with colored output. Errors are always logged.
func (l *Logger) LogHTTPError(method, path, clientIP string, status int, message string, err error) {
	l.Printf("[HTTP-ERROR] %s | %15s | %-17s | %s | %s: %v",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		message,
		err,
	)
}
