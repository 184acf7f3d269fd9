package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger_CapturesLevels(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("fetch url=%s", "http://x")
	l.Info("listening on %s", ":8765")
	l.Warn("slow tick")
	l.Error("decode failed: %v", "unexpected EOF")

	assert.Len(t, l.Messages, 4)
	assert.True(t, l.HasLevel("debug"))
	assert.True(t, l.HasLevel("info"))
	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("fatal"))

	assert.Equal(t, "fetch url=http://x", l.Messages[0].Message)
	assert.Equal(t, "decode failed: unexpected EOF", l.Messages[3].Message)
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("something")
	l.Clear()
	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel("info"))
}

func TestNoopLogger_DiscardsEverything(t *testing.T) {
	l := Noop()
	// Must not panic and must not write anywhere observable.
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	assert.True(t, buf.HasLevel("info"))
}
