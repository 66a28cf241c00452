package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New()
	log.SetOutput(&buf)

	log.Info("kept 2 of 3 members")
	log.Warn("trimmed dangling references")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "kept 2 of 3 members")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "trimmed dangling references")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := New()
	log.SetOutput(&buf)

	log.Error(zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "no such member"), "target", "api"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "no such member")
}
