package config

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/inputguard/pkg/logger"
)

// App holds process-wide settings. Listener settings are loaded separately
// into httpserver.Config.
type App struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Profiles  string `env:"PROFILES" envDefault:"inputguard.yaml"`
}

// Logger builds the process logger described by LogLevel and LogFormat.
// Extra options are applied last.
func (a App) Logger(out io.Writer, opts ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(a.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	format, err := logger.ParseFormat(a.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}

	base := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(out),
	}
	return logger.New(append(base, opts...)...), nil
}
