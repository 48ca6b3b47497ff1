package devapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Zachkp/portfolio/internal/models"
)

// Router configures the API routes and returns the handler
func Router(ps *ProjectService) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	h := &projectHandler{projectService: ps}

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{id}", h.GetProject)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

type projectHandler struct {
	projectService *ProjectService
}

// ListProjects handles GET /api/projects
func (h *projectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.Envelope{
		Success: true,
		Data:    h.projectService.GetAll(),
	})
}

// GetProject handles GET /api/projects/{id}
func (h *projectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "Project not found"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "data": project})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode json response", "error", err)
	}
}
