package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cottand/monoc/xir"
	"github.com/stretchr/testify/assert"
)

func TestSectionFiltering(t *testing.T) {
	SetLevel(slog.LevelDebug)
	t.Cleanup(func() { SetLevel(slog.LevelError) })

	buf := &bytes.Buffer{}
	logger := NewLogger(buf)

	logger.With("section", "simplify").Debug("kept from handler", "expr", xir.I32Lit(3))
	logger.Debug("kept from record", "section", "fixture")
	logger.With("section", "parser").Debug("dropped")
	logger.Debug("dropped without section")
	logger.With("section", "parser").Warn("warnings always pass")

	out := buf.String()
	assert.Contains(t, out, "kept from handler")
	assert.Contains(t, out, "expr.str=3")
	assert.Contains(t, out, "expr.name=I32Lit")
	assert.Contains(t, out, "kept from record")
	assert.Contains(t, out, "warnings always pass")
	assert.NotContains(t, out, "dropped")
	assert.NotContains(t, out, "time=")
}

func TestLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf).With("section", "cmd")

	logger.Info("too quiet")
	assert.Empty(t, buf.String())

	logger.Error("loud enough")
	assert.Contains(t, buf.String(), "loud enough")
}
