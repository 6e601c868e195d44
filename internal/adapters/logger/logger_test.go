package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/logger"
)

// capture redirects the logger to a buffer and returns what fn logged.
func capture(t *testing.T, fn func(lg *logger.Logger)) string {
	t.Helper()

	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	fn(lg)
	return buf.String()
}

func TestLogger_Info(t *testing.T) {
	output := capture(t, func(lg *logger.Logger) {
		lg.Info("configuring pism")
	})

	assert.Contains(t, output, "configuring pism")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Warn(t *testing.T) {
	output := capture(t, func(lg *logger.Logger) {
		lg.Warn("install prefix not set")
	})

	assert.Contains(t, output, "install prefix not set")
	assert.Contains(t, output, "WARN")
}

func TestLogger_Error(t *testing.T) {
	output := capture(t, func(lg *logger.Logger) {
		lg.Error(os.ErrPermission)
	})

	assert.Contains(t, output, "permission denied")
	assert.Contains(t, output, "ERROR")
}
