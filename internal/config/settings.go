package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrainSettings groups the demo gradient-descent driver's hyperparameters.
type TrainSettings struct {
	LearningRate float64 `yaml:"learning_rate"`
	Epochs       int     `yaml:"epochs"`
	LogLevel     string  `yaml:"log_level"`
}

// ServerSettings groups cmd/server's listen address and log level.
type ServerSettings struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

// LoadTrainSettings reads a TrainSettings document from a YAML file,
// applying defaults for any field left unset.
func LoadTrainSettings(path string) (*TrainSettings, error) {
	s := &TrainSettings{LearningRate: 0.1, Epochs: 100, LogLevel: "info"}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading train settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("config: parsing train settings %s: %w", path, err)
	}
	return s, nil
}
