package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func errUnknownHandle(handle string) error {
	return fmt.Errorf("httpapi: unknown handle %q", handle)
}

func errUnknownActivation(name string) error {
	return fmt.Errorf("httpapi: unknown activation %q (want logsig or purelin)", name)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
