// Package logger builds the component loggers used across orbitsim.
package logger

import (
	"io"
	"log"
	"os"
)

const flags = log.LstdFlags | log.Lmicroseconds | log.LUTC

// New returns a logger that prefixes every line with the component name.
func New(component string) *log.Logger {
	return log.New(os.Stderr, "["+component+"] ", flags)
}

// Discard returns a logger that drops everything. Tests and the live view
// use it so log lines do not tear the terminal.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
