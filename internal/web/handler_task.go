package web

import (
	"net/http"

	"github.com/vbonduro/gridtrack/internal/service"
)

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var in service.NewTask
	if err := decodeJSON(w, r, &in); err != nil {
		writeErrorKind(w, kindRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := s.tasks.CreateTask(r.Context(), in); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.ListTasks(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tasks)
}
