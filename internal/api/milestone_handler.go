package api

import (
	"encoding/json"
	"net/http"

	"github.com/planroom/teamplan-api/internal/api/shared"
	"github.com/planroom/teamplan-api/internal/platform/cache"
	"github.com/planroom/teamplan-api/internal/service"
)

var milestonesListKey = cache.ListKey("milestones")

// MilestoneHandler handles milestone-related HTTP requests.
type MilestoneHandler struct {
	milestoneService *service.MilestoneService
	listCache        *cache.ListCache
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(milestoneService *service.MilestoneService, listCache *cache.ListCache) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneService: milestoneService,
		listCache:        listCache,
	}
}

// Create handles POST /api/milestones. A successful creation notifies the
// project owner before the response is written.
func (h *MilestoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	var req CreateMilestoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	milestone, err := h.milestoneService.Create(r.Context(), actor, service.CreateMilestoneInput{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), milestonesListKey)
	shared.RespondWithJSON(w, r, http.StatusCreated, milestoneToResponse(milestone))
}

// Get handles GET /api/milestones/{id}.
func (h *MilestoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	milestone, err := h.milestoneService.Get(r.Context(), actor, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, milestoneToResponse(milestone))
}

// List handles GET /api/milestones.
func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	if payload, hit := h.listCache.Get(r.Context(), milestonesListKey); hit {
		writeCachedJSON(w, payload)
		return
	}

	milestones, err := h.milestoneService.List(r.Context(), actor)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]MilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		resp = append(resp, milestoneToResponse(m))
	}

	body, err := json.Marshal(resp)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Set(r.Context(), milestonesListKey, body)
	writeRawJSON(w, http.StatusOK, body)
}

// Update handles PUT /api/milestones/{id}. Updates never notify.
func (h *MilestoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateMilestoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	milestone, err := h.milestoneService.Update(r.Context(), actor, id, service.UpdateMilestoneInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), milestonesListKey)
	shared.RespondWithJSON(w, r, http.StatusOK, milestoneToResponse(milestone))
}

// Delete handles DELETE /api/milestones/{id}.
func (h *MilestoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.milestoneService.Delete(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), milestonesListKey)
	w.WriteHeader(http.StatusNoContent)
}
