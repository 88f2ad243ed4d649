package httpapi

import (
	"net/http"

	"rnntrain/internal/inference"
	"rnntrain/internal/registry"
)

type createPropagationContextRequest struct {
	Layers  []layerSpecJSON `json:"layers"`
	Inputs  int             `json:"inputs"`
	Weights []float64       `json:"weights"`
}

func handleCreatePropagationContext(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPropagationContextRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		specs, err := toLayerSpecs(req.Layers)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		ic := inference.NewContext(specs, req.Inputs)
		if req.Weights != nil {
			if err := ic.SetWeights(req.Weights); err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
		}

		h := reg.Put("pc", ic)
		writeJSON(w, http.StatusCreated, createContextResponse{Handle: h})
	}
}

type propagateInputRequest struct {
	Input            []float64 `json:"input"`
	ResetHiddenState bool      `json:"resetHiddenState"`
}

type propagateInputResponse struct {
	Output []float64 `json:"output"`
}

func handlePropagateInput(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle := r.PathValue("handle")
		entry, ok := reg.Get(registry.Handle(handle))
		if !ok {
			writeError(w, http.StatusNotFound, errUnknownHandle(handle))
			return
		}
		ic, ok := entry.Context.(*inference.Context)
		if !ok {
			writeError(w, http.StatusNotFound, errUnknownHandle(handle))
			return
		}

		var req propagateInputRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		entry.Lock()
		defer entry.Unlock()

		output, err := inference.PropagateInput(ic, req.Input, req.ResetHiddenState)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, propagateInputResponse{Output: output})
	}
}
