package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rnntrain/internal/config"
	"rnntrain/internal/ingest"
	"rnntrain/internal/progress"
	"rnntrain/internal/training"
)

var (
	trainNetworkPath  string
	trainSettingsPath string
	trainDataPath     string
	trainOutputPath   string
	trainWSAddr       string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run the demo fixed-step gradient-descent driver against EvaluateWeights",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainNetworkPath, "network", "", "path to network topology YAML (required)")
	trainCmd.Flags().StringVar(&trainSettingsPath, "settings", "", "path to train settings YAML (optional)")
	trainCmd.Flags().StringVar(&trainDataPath, "data", "", "path to training data CSV (required)")
	trainCmd.Flags().StringVar(&trainOutputPath, "weights-out", "", "path to write the final flat weight vector CSV (optional)")
	trainCmd.Flags().StringVar(&trainWSAddr, "ws-addr", "", "if set, serve live per-epoch progress over WebSocket at this address (e.g. :8081)")
	trainCmd.MarkFlagRequired("network")
	trainCmd.MarkFlagRequired("data")
}

// runTrain is not a substitute for a real optimization driver (line
// search, conjugate-gradient direction selection, and similar are
// explicitly out of scope); it exists only to exercise EvaluateWeights
// end to end with a minimal w ← w − η·gradient update.
func runTrain(cmd *cobra.Command, args []string) error {
	netSpec, err := config.LoadNetworkSpec(trainNetworkPath)
	if err != nil {
		return err
	}
	layerSpecs, err := netSpec.LayerSpecs()
	if err != nil {
		return err
	}

	settings, err := config.LoadTrainSettings(trainSettingsPath)
	if err != nil {
		return err
	}

	f, err := os.Open(trainDataPath)
	if err != nil {
		return fmt.Errorf("train: opening training data: %w", err)
	}
	defer f.Close()

	data, err := ingest.ParseTrainingCSV(f)
	if err != nil {
		return err
	}

	tc, err := training.NewContext(layerSpecs, data.Input, data.Output)
	if err != nil {
		return err
	}

	weights := make([]float64, tc.NumWeights())
	seedWeights(weights)

	var bridge *progress.Bridge
	if trainWSAddr != "" {
		hub := progress.NewHub()
		bridge = progress.NewBridge(hub)
		server := &http.Server{Addr: trainWSAddr, Handler: progress.NewHandler(hub)}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logrus.Errorf("progress server: %v", err)
			}
		}()
		logrus.Infof("serving live training progress at ws://%s/", trainWSAddr)
	}

	start := time.Now()
	var result training.Result
	for epoch := 0; epoch < settings.Epochs; epoch++ {
		result, err = training.EvaluateWeights(tc, weights)
		if err != nil {
			return err
		}
		for i := range weights {
			weights[i] -= settings.LearningRate * result.Gradient[i]
		}
		logrus.WithFields(logrus.Fields{"epoch": epoch, "error": result.Error}).Info("epoch complete")
		if bridge != nil {
			bridge.OnEpoch(epoch, result.Error, time.Since(start).Seconds())
		}
	}

	logrus.Infof("training complete: final error=%.6g output=%v", result.Error, result.Output)

	if trainOutputPath != "" {
		if err := writeWeightsCSV(trainOutputPath, weights); err != nil {
			return err
		}
		logrus.Infof("weights written to %s", trainOutputPath)
	}
	return nil
}

// seedWeights gives the weights small deterministic values cycling
// through -0.03..0.03 (every seventh weight, i%7 == 3, is zero) so the
// demo driver's gradients aren't trivially zero at epoch 0; a real
// embedding application would supply its own initialization strategy.
func seedWeights(weights []float64) {
	for i := range weights {
		weights[i] = 0.01 * float64((i%7)-3)
	}
}

func writeWeightsCSV(path string, weights []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("train: creating %s: %w", path, err)
	}
	defer f.Close()
	for i, w := range weights {
		if i > 0 {
			fmt.Fprint(f, ",")
		}
		fmt.Fprintf(f, "%g", w)
	}
	fmt.Fprintln(f)
	return nil
}
