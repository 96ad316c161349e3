package web

import (
	"net/http"

	"github.com/vbonduro/gridtrack/internal/service"
)

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var in service.NewAsset
	if err := decodeJSON(w, r, &in); err != nil {
		writeErrorKind(w, kindRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := s.assets.CreateAsset(r.Context(), in); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.assets.ListAssets(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, assets)
}

func (s *Server) handleReconcileAssets(w http.ResponseWriter, r *http.Request) {
	report, err := s.assets.ReconcileWorkdirs(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}
