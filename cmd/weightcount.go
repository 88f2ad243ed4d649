package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rnntrain/internal/config"
	"rnntrain/internal/weightcount"
)

var weightCountNetworkPath string

var weightCountCmd = &cobra.Command{
	Use:   "weight-count",
	Short: "Print the flat weight vector length a network topology requires",
	RunE:  runWeightCount,
}

func init() {
	weightCountCmd.Flags().StringVar(&weightCountNetworkPath, "network", "", "path to network topology YAML (required)")
	weightCountCmd.MarkFlagRequired("network")
}

func runWeightCount(cmd *cobra.Command, args []string) error {
	netSpec, err := config.LoadNetworkSpec(weightCountNetworkPath)
	if err != nil {
		return err
	}
	layerSpecs, err := netSpec.LayerSpecs()
	if err != nil {
		return err
	}

	n := weightcount.GetWeightCount(layerSpecs, netSpec.Inputs)
	logrus.Infof("weight count: %d", n)
	return nil
}
