package api

import (
	"encoding/json"
	"net/http"

	"github.com/planroom/teamplan-api/internal/api/shared"
	"github.com/planroom/teamplan-api/internal/platform/cache"
	"github.com/planroom/teamplan-api/internal/service"
)

var projectsListKey = cache.ListKey("projects")

// ProjectHandler handles project-related HTTP requests.
type ProjectHandler struct {
	projectService *service.ProjectService
	listCache      *cache.ListCache
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *service.ProjectService, listCache *cache.ListCache) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		listCache:      listCache,
	}
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	var req ProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.projectService.Create(r.Context(), actor, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), projectsListKey)
	shared.RespondWithJSON(w, r, http.StatusCreated, projectToResponse(project))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	project, err := h.projectService.Get(r.Context(), actor, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project))
}

// List handles GET /api/projects. Responses are cached briefly; every write
// to the resource invalidates the cached list.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	if payload, hit := h.listCache.Get(r.Context(), projectsListKey); hit {
		writeCachedJSON(w, payload)
		return
	}

	projects, err := h.projectService.List(r.Context(), actor)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, projectToResponse(p))
	}

	h.cacheAndRespond(w, r, resp)
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.projectService.Update(r.Context(), actor, id, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), projectsListKey)
	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project))
}

// Delete handles DELETE /api/projects/{id}. Deleting a project cascades to
// its tasks and milestones, so their cached lists go stale too.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.projectService.Delete(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(),
		projectsListKey, tasksListKey, milestonesListKey)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) cacheAndRespond(w http.ResponseWriter, r *http.Request, resp []ProjectResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Set(r.Context(), projectsListKey, body)
	writeRawJSON(w, http.StatusOK, body)
}
