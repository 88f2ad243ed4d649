package httpapi

import (
	"net/http"

	"rnntrain/internal/ortho"
	"rnntrain/internal/registry"
)

type createOrthoContextRequest struct {
	BasisDimension int `json:"basisDimension"`
	MaxBasisCount  int `json:"maxBasisCount"`
}

func handleCreateOrthoContext(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrthoContextRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		oc := ortho.NewContext(req.BasisDimension, req.MaxBasisCount)
		h := reg.Put("oc", oc)
		writeJSON(w, http.StatusCreated, createContextResponse{Handle: h})
	}
}

type orthogonalizeRequest struct {
	Vector           []float64   `json:"vector"`
	OrthonormalBases [][]float64 `json:"orthonormalBases"` // numBases rows of basisDimension each
}

type orthogonalizeResponse struct {
	Residual []float64 `json:"residual"`
}

func handleOrthogonalize(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle := r.PathValue("handle")
		entry, ok := reg.Get(registry.Handle(handle))
		if !ok {
			writeError(w, http.StatusNotFound, errUnknownHandle(handle))
			return
		}
		oc, ok := entry.Context.(*ortho.Context)
		if !ok {
			writeError(w, http.StatusNotFound, errUnknownHandle(handle))
			return
		}

		var req orthogonalizeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		flatBases := make([]float64, 0, len(req.OrthonormalBases)*len(req.Vector))
		for _, row := range req.OrthonormalBases {
			flatBases = append(flatBases, row...)
		}

		entry.Lock()
		defer entry.Unlock()

		p := make([]float64, len(req.Vector))
		copy(p, req.Vector)
		if err := ortho.Orthogonalize(oc, p, len(req.OrthonormalBases), flatBases); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, orthogonalizeResponse{Residual: p})
	}
}
