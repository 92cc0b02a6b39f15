package utils

import (
	"io"

	"go.uber.org/zap"
)

// MustClose closes c and logs any error through zap's global logger.
// Use for defer statements where we want to track close errors.
func MustClose(c io.Closer) {
	if err := c.Close(); err != nil {
		zap.L().Warn("failed to close", zap.Error(err))
	}
}
