package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/genfactory/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger mirrors the core no-op logger.
type NopLogger = corelogger.NopLogger

var (
	mu      sync.RWMutex
	console bool
)

// Setup applies the process wide level and output format. format is "json"
// or "console"; when empty, APP_ENV=dev selects console output.
func Setup(level, format string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		lvl = l
	}
	var useConsole bool
	switch strings.ToLower(format) {
	case "console":
		useConsole = true
	case "json":
	case "":
		useConsole = strings.ToLower(os.Getenv("APP_ENV")) == "dev"
	default:
		return fmt.Errorf("unknown log format %s", format)
	}
	zerolog.SetGlobalLevel(lvl)
	mu.Lock()
	console = useConsole
	mu.Unlock()
	return nil
}

// New returns a Logger for the given component writing to stdout.
func New(component string) Logger {
	mu.RLock()
	c := console
	mu.RUnlock()
	return newZerolog(component, os.Stdout, c)
}

// NewWithWriter returns a JSON Logger writing to w.
func NewWithWriter(component string, w io.Writer) Logger {
	return newZerolog(component, w, false)
}
