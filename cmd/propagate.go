package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rnntrain/internal/config"
	"rnntrain/internal/ingest"
	"rnntrain/internal/inference"
)

var (
	propagateNetworkPath string
	propagateWeightsPath string
	propagateInputCSV    string
	propagateReset       bool
)

var propagateCmd = &cobra.Command{
	Use:   "propagate",
	Short: "Run single-step inference (PropagateInput) over a sequence of inputs",
	RunE:  runPropagate,
}

func init() {
	propagateCmd.Flags().StringVar(&propagateNetworkPath, "network", "", "path to network topology YAML (required)")
	propagateCmd.Flags().StringVar(&propagateWeightsPath, "weights", "", "path to flat weight vector CSV (required)")
	propagateCmd.Flags().StringVar(&propagateInputCSV, "inputs", "", "path to a CSV of input rows, one time step per line, no target column (required)")
	propagateCmd.Flags().BoolVar(&propagateReset, "reset-hidden-state", false, "reset recurrent hidden state to the time-zero sentinel before the first step")
	propagateCmd.MarkFlagRequired("network")
	propagateCmd.MarkFlagRequired("weights")
	propagateCmd.MarkFlagRequired("inputs")
}

func runPropagate(cmd *cobra.Command, args []string) error {
	netSpec, err := config.LoadNetworkSpec(propagateNetworkPath)
	if err != nil {
		return err
	}
	layerSpecs, err := netSpec.LayerSpecs()
	if err != nil {
		return err
	}

	wf, err := os.Open(propagateWeightsPath)
	if err != nil {
		return fmt.Errorf("propagate: opening weights: %w", err)
	}
	defer wf.Close()
	weights, err := ingest.ParseWeightsCSV(wf)
	if err != nil {
		return err
	}

	rows, err := readInputRows(propagateInputCSV, netSpec.Inputs)
	if err != nil {
		return err
	}

	ic := inference.NewContext(layerSpecs, netSpec.Inputs)
	if err := ic.SetWeights(weights); err != nil {
		return err
	}

	for t, row := range rows {
		reset := propagateReset && t == 0
		output, err := inference.PropagateInput(ic, row, reset)
		if err != nil {
			return err
		}
		logrus.Infof("step %d: output=%v", t, output)
	}
	return nil
}

// readInputRows parses a CSV with a header row of bare input columns (no
// target column) via ingest.ParseInputRowsCSV.
func readInputRows(path string, nInputs int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("propagate: opening inputs: %w", err)
	}
	defer f.Close()
	return ingest.ParseInputRowsCSV(f, nInputs)
}
