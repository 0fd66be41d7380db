package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNamed(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	Named("records").Infow("hello", "k", "v")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "records", entries[0].LoggerName)
	assert.Equal(t, "hello", entries[0].Message)
}
