package linux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	Logger().Debug("line requested", zap.Int("offset", 11))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "line requested", logs.All()[0].Message)

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.NotPanics(t, func() { Logger().Debug("after reset") })
	assert.Equal(t, 1, logs.Len())
}
