package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rnntrain/internal/ingest"
	"rnntrain/internal/ortho"
)

var (
	orthoVectorPath string
	orthoBasesPath  string
)

var orthogonalizeCmd = &cobra.Command{
	Use:   "orthogonalize",
	Short: "Gram-Schmidt project a vector's residual against a set of orthonormal basis rows",
	RunE:  runOrthogonalize,
}

func init() {
	orthogonalizeCmd.Flags().StringVar(&orthoVectorPath, "vector", "", "path to the vector CSV (single row, required)")
	orthogonalizeCmd.Flags().StringVar(&orthoBasesPath, "bases", "", "path to the orthonormal bases CSV (one basis row per line, required)")
	orthogonalizeCmd.MarkFlagRequired("vector")
	orthogonalizeCmd.MarkFlagRequired("bases")
}

func runOrthogonalize(cmd *cobra.Command, args []string) error {
	vf, err := os.Open(orthoVectorPath)
	if err != nil {
		return fmt.Errorf("orthogonalize: opening vector: %w", err)
	}
	defer vf.Close()
	p, err := ingest.ParseWeightsCSV(vf)
	if err != nil {
		return err
	}

	basisRows, err := readBasisRows(orthoBasesPath, len(p))
	if err != nil {
		return err
	}

	flatBases := make([]float64, 0, len(basisRows)*len(p))
	for _, row := range basisRows {
		flatBases = append(flatBases, row...)
	}

	oc := ortho.NewContext(len(p), len(basisRows))
	if err := ortho.Orthogonalize(oc, p, len(basisRows), flatBases); err != nil {
		return err
	}

	logrus.Infof("residual: %v", p)
	return nil
}

func readBasisRows(path string, basisDimension int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("orthogonalize: opening bases: %w", err)
	}
	defer f.Close()
	return ingest.ParseRowsCSV(f, basisDimension)
}
