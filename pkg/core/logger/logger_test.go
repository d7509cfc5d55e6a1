package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_FileAndLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init("debug", path))
	t.Cleanup(func() { Log.SetOutput(os.Stderr) })

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Tagged("TEST").Info("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "tag=TEST")
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init("loud", ""))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
