package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MuhamadTAH/psychology-sub002/internal/ingest"
)

// HandleIngest accepts one raw submission body (JSON or YAML).
func HandleIngest(svc *ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
		if err != nil {
			respondError(w, "add lesson", &ingest.RequestError{Message: "Could not read request body"})
			return
		}
		res, err := svc.Ingest(r.Context(), body)
		if err != nil {
			respondError(w, "add lesson", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleList returns {"lessons": [...]}.
func HandleList(svc *ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls, err := svc.List(r.Context())
		if err != nil {
			respondError(w, "load lessons", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"lessons": ls})
	}
}

func HandleEdit(svc *ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ingest.EditRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
			respondError(w, "edit lesson", &ingest.RequestError{Message: "Invalid request body: " + err.Error()})
			return
		}
		res, err := svc.Edit(r.Context(), req)
		if err != nil {
			respondError(w, "edit lesson", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

func HandleDelete(svc *ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ingest.DeleteRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
			respondError(w, "delete lesson", &ingest.RequestError{Message: "Invalid request body: " + err.Error()})
			return
		}
		res, err := svc.Delete(r.Context(), req)
		if err != nil {
			respondError(w, "delete lesson", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ingest.ErrLessonNotFound):
		return http.StatusNotFound
	case ingest.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, action string, err error) {
	respondJSON(w, StatusFor(err), ingest.ErrorPayload(action, err))
}

// respondJSON encodes v before any header is written, so an unencodable
// payload turns into a 500 instead of a truncated 200.
func respondJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(ingest.ErrorResponse{Error: "Failed to encode response", Details: err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
