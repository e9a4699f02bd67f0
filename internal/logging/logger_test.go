package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.InfoLevel, GetLevel(""))
	assert.Equal(t, logrus.InfoLevel, GetLevel("nonsense"))
}

func TestSetup_File(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	fileName := filepath.Join(t.TempDir(), "fitness")
	Setup(LoggerSetupParams{
		LogFileName:   fileName,
		LogLevel:      "info",
		LogFormatJSON: true,
	})

	logrus.Info("hello from test")

	content, err := os.ReadFile(fileName + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"hello from test"`)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
