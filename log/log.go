// Package log provides the leveled loggers used across the module.
// Debug output is discarded unless enabled.
package log

import (
	"io"
	"log"
	"os"
)

var (
	Debug = log.New(io.Discard, "DEBUG ", log.LstdFlags)
	Info  = log.New(os.Stderr, "INFO ", log.LstdFlags)
)

// EnableDebug routes debug output to stderr.
func EnableDebug() {
	Debug.SetOutput(os.Stderr)
}

// DisableDebug discards debug output again.
func DisableDebug() {
	Debug.SetOutput(io.Discard)
}

// SetOutput redirects both loggers to w.
func SetOutput(w io.Writer) {
	Debug.SetOutput(w)
	Info.SetOutput(w)
}
