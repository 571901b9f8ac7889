// Package util contains small helpers that would not hurt the simplicity
// of Go if they were in the stdlib.
package util

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Min returns the minimum of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// Closer closes c and logs an error if that failed.
// Useful in defer statements where the error would be dropped otherwise.
func Closer(c io.Closer) {
	if err := c.Close(); err != nil {
		log.WithError(err).Warn("failed to close")
	}
}
