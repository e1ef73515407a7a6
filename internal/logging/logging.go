// Package logging builds the diagnostic loggers used across arcanaview.
package logging

import (
	"io"
	"log"

	"github.com/fatih/color"
)

// New returns a logger writing to w with a colored "[name] " prefix.
// Color is dropped automatically when w is not a terminal.
func New(w io.Writer, name string) *log.Logger {
	prefix := color.New(color.FgMagenta).Sprintf("[%s] ", name)
	return log.New(w, prefix, log.LstdFlags|log.Lmsgprefix)
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
