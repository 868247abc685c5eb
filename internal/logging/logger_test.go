// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-3, zapcore.InfoLevel},
		{0, zapcore.InfoLevel},
		{DEFAULT, zapcore.Level(-2)},
		{TRACE, zapcore.Level(-5)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, levelFor(c.verbosity), "verbosity %d", c.verbosity)
	}
}

func TestNewLoggerVerbosity(t *testing.T) {
	for _, dev := range []bool{false, true} {
		logger, err := NewLogger(VERBOSE, dev)
		require.NoError(t, err)
		assert.True(t, logger.V(DEFAULT).Enabled())
		assert.True(t, logger.V(VERBOSE).Enabled())
		assert.False(t, logger.V(DEBUG).Enabled())
	}
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()
	assert.True(t, logger.V(TRACE).Enabled())
	logger.V(DEBUG).Info("test logger ready", "verbosity", TRACE)
}
