package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dconn.dev/folio/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("listing projects", "error", err)
		respondError(h.logger, w, http.StatusBadGateway, "Projects unavailable")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{index}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid project index")
		return
	}

	project, err := h.projectService.GetByIndex(r.Context(), index)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(h.logger, w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.logger.Error("loading project", "index", index, "error", err)
		respondError(h.logger, w, http.StatusBadGateway, "Projects unavailable")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, project)
}
