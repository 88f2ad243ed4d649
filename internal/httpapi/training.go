package httpapi

import (
	"encoding/json"
	"net/http"

	"rnntrain/internal/activation"
	"rnntrain/internal/linalg"
	"rnntrain/internal/network"
	"rnntrain/internal/registry"
	"rnntrain/internal/training"
)

// layerSpecJSON mirrors config.LayerEntry's wire shape so httpapi does
// not need to round-trip through YAML for a JSON request body.
type layerSpecJSON struct {
	Nodes      int    `json:"nodes"`
	Recurrent  bool   `json:"recurrent"`
	Activation string `json:"activation"`
}

func (l layerSpecJSON) toLayerSpec() (network.LayerSpec, error) {
	var actType activation.Type
	switch l.Activation {
	case "logsig":
		actType = activation.LogSig
	case "purelin":
		actType = activation.PureLin
	default:
		return network.LayerSpec{}, errUnknownActivation(l.Activation)
	}
	return network.LayerSpec{NodeCount: l.Nodes, IsRecurrent: l.Recurrent, ActivationType: actType}, nil
}

type createTrainingContextRequest struct {
	Layers       []layerSpecJSON `json:"layers"`
	Inputs       int             `json:"inputs"`
	TrainingData [][]float64     `json:"trainingData"` // nSamples rows of nInputs columns
	OutputData   []float64       `json:"outputData"`
}

type createContextResponse struct {
	Handle registry.Handle `json:"handle"`
}

func handleCreateTrainingContext(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTrainingContextRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		specs, err := toLayerSpecs(req.Layers)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		input := linalg.NewMatrix(req.Inputs, len(req.TrainingData))
		for t, row := range req.TrainingData {
			for i, v := range row {
				input.Set(i, t, v)
			}
		}
		output := linalg.NewVector(len(req.OutputData))
		copy(output.Data, req.OutputData)

		tc, err := training.NewContext(specs, input, output)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		h := reg.Put("tc", tc)
		writeJSON(w, http.StatusCreated, createContextResponse{Handle: h})
	}
}

type evaluateWeightsRequest struct {
	Weights []float64 `json:"weights"`
}

type evaluateWeightsResponse struct {
	Output   []float64 `json:"output"`
	Error    float64   `json:"error"`
	Gradient []float64 `json:"gradient"`
}

func handleEvaluateWeights(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, tc, ok := lookupTrainingContext(w, reg, r.PathValue("handle"))
		if !ok {
			return
		}

		var req evaluateWeightsRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		entry.Lock()
		defer entry.Unlock()

		result, err := training.EvaluateWeights(tc, req.Weights)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluateWeightsResponse{
			Output:   result.Output,
			Error:    result.Error,
			Gradient: result.Gradient,
		})
	}
}

func lookupTrainingContext(w http.ResponseWriter, reg *registry.Registry, handle string) (*registry.Entry, *training.Context, bool) {
	entry, ok := reg.Get(registry.Handle(handle))
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownHandle(handle))
		return nil, nil, false
	}
	tc, ok := entry.Context.(*training.Context)
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownHandle(handle))
		return nil, nil, false
	}
	return entry, tc, true
}

func toLayerSpecs(entries []layerSpecJSON) ([]network.LayerSpec, error) {
	specs := make([]network.LayerSpec, len(entries))
	for i, e := range entries {
		spec, err := e.toLayerSpec()
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	return specs, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}
