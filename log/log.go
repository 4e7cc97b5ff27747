// Package log is the module's logging seam. The default logger discards
// everything so the library stays silent inside host applications;
// applications that want diagnostics install a zerolog logger of their own.
package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// SetLogger installs the logger used by the whole module.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput installs a console-style logger writing to w.
func SetOutput(w io.Writer) {
	SetLogger(zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).With().Timestamp().Logger())
}

// Logger returns the current logger for structured call sites.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Info(msg string) {
	l := Logger()
	l.Info().Msg(msg)
}

func Infof(format string, args ...any) {
	l := Logger()
	l.Info().Msg(fmt.Sprintf(format, args...))
}

func Warn(msg string) {
	l := Logger()
	l.Warn().Msg(msg)
}

func Warnf(format string, args ...any) {
	l := Logger()
	l.Warn().Msg(fmt.Sprintf(format, args...))
}

func Error(msg string) {
	l := Logger()
	l.Error().Msg(msg)
}

func Errorf(format string, args ...any) {
	l := Logger()
	l.Error().Msg(fmt.Sprintf(format, args...))
}
