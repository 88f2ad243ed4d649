// Package config loads the YAML documents the CLI and server use to
// describe a network topology and the demo driver's hyperparameters,
// without requiring callers to hand-write []network.LayerSpec literals.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rnntrain/internal/activation"
	"rnntrain/internal/network"
)

// LayerEntry is one YAML layer description.
type LayerEntry struct {
	Nodes      int    `yaml:"nodes"`
	Recurrent  bool   `yaml:"recurrent"`
	Activation string `yaml:"activation"` // "logsig" or "purelin"
}

// NetworkSpec is the YAML-serializable topology description: the input
// width plus an ordered list of layers.
type NetworkSpec struct {
	Inputs int          `yaml:"inputs"`
	Layers []LayerEntry `yaml:"layers"`
}

// LoadNetworkSpec reads and parses a NetworkSpec from a YAML file.
func LoadNetworkSpec(path string) (*NetworkSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading network spec %s: %w", path, err)
	}
	var spec NetworkSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("config: parsing network spec %s: %w", path, err)
	}
	return &spec, nil
}

// LayerSpecs converts the YAML entries into the []network.LayerSpec the
// numerical core expects.
func (s *NetworkSpec) LayerSpecs() ([]network.LayerSpec, error) {
	specs := make([]network.LayerSpec, len(s.Layers))
	for i, entry := range s.Layers {
		actType, err := parseActivation(entry.Activation)
		if err != nil {
			return nil, fmt.Errorf("config: layer %d: %w", i, err)
		}
		specs[i] = network.LayerSpec{
			NodeCount:      entry.Nodes,
			IsRecurrent:    entry.Recurrent,
			ActivationType: actType,
		}
	}
	return specs, nil
}

func parseActivation(s string) (activation.Type, error) {
	switch s {
	case "logsig":
		return activation.LogSig, nil
	case "purelin":
		return activation.PureLin, nil
	default:
		return 0, fmt.Errorf("unknown activation %q (want logsig or purelin)", s)
	}
}
