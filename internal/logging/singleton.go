package logging

import (
	"sync"
)

var (
	instance  *Logger
	mu        sync.RWMutex
	logConfig *Config
)

// Configure sets the logging configuration.
// This should be called before any logger usage.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
	instance = nil
}

// InitLogger configures the logger and builds it immediately so that
// file errors surface at startup.
func InitLogger(config *Config) error {
	mu.Lock()
	defer mu.Unlock()

	l, err := NewLogger(config)
	if err != nil {
		return err
	}
	logConfig = config
	instance = l
	return nil
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	instance = l
}

// GetLogger returns the singleton logger instance.
// If Configure was never called it falls back to an info-level stdout logger.
func GetLogger() *Logger {
	mu.RLock()
	l := instance
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		return instance
	}

	cfg := logConfig
	if cfg == nil {
		cfg = &Config{Level: LevelInfo}
	}

	var err error
	instance, err = NewLogger(cfg)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return instance
}
