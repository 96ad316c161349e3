package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vbonduro/gridtrack/internal/domain"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Values of the X-Error-Kind response header.
const (
	kindRequest      = "request"
	kindValidation   = "validation"
	kindDuplicate    = "duplicate"
	kindStorage      = "storage"
	kindProvisioning = "provisioning"
	kindInternal     = "internal"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response failed", "error", err)
	}
}

func writeErrorKind(w http.ResponseWriter, kind, msg string, status int) {
	w.Header().Set("X-Error-Kind", kind)
	http.Error(w, msg, status)
}

// writeError maps err onto a status code, an X-Error-Kind and a message the
// client can show. Server-side failures are logged with the full error.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		de *domain.DuplicateError
		pe *domain.ProvisioningError
	)

	switch {
	case errors.As(err, &ve):
		writeErrorKind(w, kindValidation, ve.Msg, http.StatusBadRequest)
	case errors.As(err, &de):
		writeErrorKind(w, kindDuplicate, fmt.Sprintf("%q already exists", de.Key), http.StatusBadRequest)
	case errors.As(err, &pe):
		s.logger.Error("request failed", "path", r.URL.Path, "kind", kindProvisioning, "error", err)
		writeErrorKind(w, kindProvisioning,
			fmt.Sprintf("asset %q was saved but its working directory could not be created", pe.Asset),
			http.StatusInternalServerError)
	case errors.Is(err, domain.ErrStorage):
		s.logger.Error("request failed", "path", r.URL.Path, "kind", kindStorage, "error", err)
		writeErrorKind(w, kindStorage, "record storage is unreadable; contact an administrator", http.StatusInternalServerError)
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "kind", kindInternal, "error", err)
		writeErrorKind(w, kindInternal, "internal error", http.StatusInternalServerError)
	}
}
