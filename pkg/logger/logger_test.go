//go:build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.Logf("Getting %s", "https://github.com/catppuccin/nvim/pull/8")

	assert.Equal(t, "[issue-state] Getting https://github.com/catppuccin/nvim/pull/8\n", buf.String())
}

func TestNoopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNoopLogger().Logf("nothing %d", 1)
	})
}
