package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTrainSettingsDefaults(t *testing.T) {
	s, err := LoadTrainSettings("")
	require.NoError(t, err)
	assert.Equal(t, 0.1, s.LearningRate)
	assert.Equal(t, 100, s.Epochs)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadTrainSettingsOverrides(t *testing.T) {
	path := writeTempFile(t, "settings.yaml", `
learning_rate: 0.05
epochs: 50
`)
	s, err := LoadTrainSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 0.05, s.LearningRate)
	assert.Equal(t, 50, s.Epochs)
	assert.Equal(t, "info", s.LogLevel) // unset field keeps its default
}
