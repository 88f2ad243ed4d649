package httpapi

import (
	"net/http"

	"rnntrain/internal/weightcount"
)

type weightCountRequest struct {
	Layers []layerSpecJSON `json:"layers"`
	Inputs int             `json:"inputs"`
}

type weightCountResponse struct {
	Count int `json:"count"`
}

func handleWeightCount(w http.ResponseWriter, r *http.Request) {
	var req weightCountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	specs, err := toLayerSpecs(req.Layers)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	n := weightcount.GetWeightCount(specs, req.Inputs)
	writeJSON(w, http.StatusOK, weightCountResponse{Count: n})
}
