package api

import (
	"net/http"
)

// ProgramsHandler serves the program rule table.
type ProgramsHandler struct {
	deps ProgramDependencies
}

// NewProgramsHandler creates a new programs handler.
func NewProgramsHandler(deps ProgramDependencies) *ProgramsHandler {
	return &ProgramsHandler{deps: deps}
}

// HandleGetPrograms handles GET /programs requests.
func (h *ProgramsHandler) HandleGetPrograms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Programs(r.Context()))
}
