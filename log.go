package sbml

import (
	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger replaces the package logger. Diagnostics and reader traces are
// written to it; the default discards everything.
func SetLogger(l zerolog.Logger) { logger = l }

// Logger returns the package logger.
func Logger() *zerolog.Logger { return &logger }
