package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnntrain/internal/registry"
)

func TestCreateOrthoContextAndOrthogonalize(t *testing.T) {
	mux := NewMux(registry.New(), nil)

	rec := postJSON(t, mux, "/ortho-contexts", createOrthoContextRequest{BasisDimension: 3, MaxBasisCount: 4})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created createContextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	orthoReq := orthogonalizeRequest{
		Vector:           []float64{3, 4, 0},
		OrthonormalBases: [][]float64{{1, 0, 0}},
	}
	rec = postJSON(t, mux, "/ortho-contexts/"+string(created.Handle)+"/orthogonalize", orthoReq)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp orthogonalizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDeltaSlice(t, []float64{0, 1, 0}, resp.Residual, 1e-9)
}

func TestOrthogonalizeUnknownHandle(t *testing.T) {
	mux := NewMux(registry.New(), nil)
	rec := postJSON(t, mux, "/ortho-contexts/oc-999/orthogonalize", orthogonalizeRequest{Vector: []float64{1}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
