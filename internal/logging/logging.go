// Package logging builds the structured logger shared by the server and
// every page session.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	File  string    // append to this file when set
	Level string    // debug, info, warn, error, fatal
	Out   io.Writer // used when File is empty; nil discards
}

// New returns a logger and a function that closes its file, if any.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
		level = l
	}

	out := opts.Out
	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", opts.File, err)
		}
		out = f
		closeFn = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "nexusflow",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
