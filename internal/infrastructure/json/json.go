package json

import (
	"encoding/json"
	"net/http"
)

const maxBodyBytes = 1_048_576 // 1MB

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Read decodes a JSON request body into dst, rejecting unknown fields and
// oversized payloads.
func Read(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}

// Write serializes data as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, status int, err error, message string) {
	Write(w, status, errorResponse{
		Error:   err.Error(),
		Message: message,
	})
}

func WriteValidationError(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusBadRequest, err, "Validation failed")
}

func WriteBadRequestError(w http.ResponseWriter, message string) {
	Write(w, http.StatusBadRequest, errorResponse{
		Error:   "bad request",
		Message: message,
	})
}

func WriteInternalError(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusInternalServerError, err, "Something went wrong")
}
