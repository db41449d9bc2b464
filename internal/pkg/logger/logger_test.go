package logger_test

import (
	"testing"

	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"info level", "info", zapcore.InfoLevel},
		{"debug level", "debug", zapcore.DebugLevel},
		{"error level", "error", zapcore.ErrorLevel},
		{"unknown level falls back to info", "verbose", zapcore.InfoLevel},
		{"empty level falls back to info", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.level)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}
