package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	dev := New(Config{IsDevelopment: true})
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod := New(Config{})
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))

	quiet := New(Config{Level: "warn"})
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
}
