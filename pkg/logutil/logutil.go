// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. Its output follows the
// writer set with SetOutput, and is discarded until SetOutput is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger,
// including those created in the future. A nil writer discards the output.
func SetOutput(newOut io.Writer) {
	if newOut == nil {
		newOut = io.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
