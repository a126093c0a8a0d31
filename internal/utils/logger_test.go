package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	require.NoError(t, ConfigureLogger("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	require.NoError(t, ConfigureLogger("warn", ""))
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)

	assert.Error(t, ConfigureLogger("loud", "text"))
	assert.Error(t, ConfigureLogger("info", "xml"))
}
