// Package cmd implements the rnntrain CLI: train, propagate,
// orthogonalize, weight-count, gradcheck, and serve subcommands, each a
// thin driver over the internal/training, internal/inference, and
// internal/ortho packages.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "rnntrain",
	Short: "Recurrent BPTT training core",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(propagateCmd)
	rootCmd.AddCommand(orthogonalizeCmd)
	rootCmd.AddCommand(weightCountCmd)
	rootCmd.AddCommand(gradcheckCmd)
	rootCmd.AddCommand(serveCmd)
}
