package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogging points the standard logger at the configured destination. The
// terminal front-end owns stdout, so logs go to a file unless LogFile is "-".
// The returned closer releases the log file.
func SetupLogging(cfg Config) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	switch cfg.LogFile {
	case "":
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	case "-":
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}
	log.SetOutput(f)
	return f, nil
}
