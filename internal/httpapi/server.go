// Package httpapi exposes the External Interfaces table over HTTP/JSON:
// one route per CreateXContext/EvaluateWeights/Destroy/Propagate/
// Orthogonalize/GetWeightCount operation, keyed by registry.Handle where
// the C ABI would use an opaque context pointer.
package httpapi

import (
	"net/http"

	"rnntrain/internal/progress"
	"rnntrain/internal/registry"
)

// NewMux builds the server's route table. progressHub may be nil, in
// which case /ws is not registered.
func NewMux(reg *registry.Registry, progressHub *progress.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handleHealth)

	mux.HandleFunc("POST /training-contexts", handleCreateTrainingContext(reg))
	mux.HandleFunc("POST /training-contexts/{handle}/evaluate", handleEvaluateWeights(reg))
	mux.HandleFunc("DELETE /training-contexts/{handle}", handleDeleteContext(reg))

	mux.HandleFunc("POST /propagation-contexts", handleCreatePropagationContext(reg))
	mux.HandleFunc("POST /propagation-contexts/{handle}/propagate", handlePropagateInput(reg))
	mux.HandleFunc("DELETE /propagation-contexts/{handle}", handleDeleteContext(reg))

	mux.HandleFunc("POST /ortho-contexts", handleCreateOrthoContext(reg))
	mux.HandleFunc("POST /ortho-contexts/{handle}/orthogonalize", handleOrthogonalize(reg))
	mux.HandleFunc("DELETE /ortho-contexts/{handle}", handleDeleteContext(reg))

	mux.HandleFunc("POST /weight-count", handleWeightCount)

	if progressHub != nil {
		mux.Handle("/ws", progress.NewHandler(progressHub))
	}

	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func handleDeleteContext(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg.Delete(registry.Handle(r.PathValue("handle")))
		w.WriteHeader(http.StatusNoContent)
	}
}
