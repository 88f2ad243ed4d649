package cmd

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rnntrain/internal/httpapi"
	"rnntrain/internal/progress"
	"rnntrain/internal/registry"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the External Interfaces table over HTTP/JSON, plus a /ws live-progress endpoint",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	reg := registry.New()
	hub := progress.NewHub()
	mux := httpapi.NewMux(reg, hub)

	logrus.Infof("starting server on %s", serveAddr)
	return http.ListenAndServe(serveAddr, mux)
}
