// Package logger configures the application's structured logging.
//
// It uses zerolog: console output in development, JSON elsewhere. Error
// events carry stack traces for errors wrapped with github.com/pkg/errors.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds the application logger for the given environment.
func New(env string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).
		With().Timestamp().Str("service", "user-management-api").Logger()
}
