package api

import (
	"encoding/json"
	"net/http"

	"github.com/planroom/teamplan-api/internal/api/shared"
	"github.com/planroom/teamplan-api/internal/platform/cache"
	"github.com/planroom/teamplan-api/internal/service"
)

var notificationsListKey = cache.ListKey("notifications")

// NotificationHandler handles notification-related HTTP requests. Reads are
// open to every role; writes are admin only.
type NotificationHandler struct {
	notificationService *service.NotificationService
	listCache           *cache.ListCache
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(
	notificationService *service.NotificationService,
	listCache *cache.ListCache,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		listCache:           listCache,
	}
}

// Create handles POST /api/notifications. Admin only; the normal path is
// the dispatcher reacting to task and milestone creation.
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	var req CreateNotificationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	notification, err := h.notificationService.Create(r.Context(), actor, req.UserID, req.Message)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), notificationsListKey)
	shared.RespondWithJSON(w, r, http.StatusCreated, notificationToResponse(notification))
}

// Get handles GET /api/notifications/{id}.
func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	notification, err := h.notificationService.Get(r.Context(), actor, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notificationToResponse(notification))
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	if payload, hit := h.listCache.Get(r.Context(), notificationsListKey); hit {
		writeCachedJSON(w, payload)
		return
	}

	notifications, err := h.notificationService.List(r.Context(), actor)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, notificationToResponse(n))
	}

	body, err := json.Marshal(resp)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Set(r.Context(), notificationsListKey, body)
	writeRawJSON(w, http.StatusOK, body)
}

// MarkRead handles PUT /api/notifications/{id}. Only the read flag can
// change; messages are immutable once dispatched.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req MarkNotificationReadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	notification, err := h.notificationService.MarkRead(r.Context(), actor, id, req.IsRead)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), notificationsListKey)
	shared.RespondWithJSON(w, r, http.StatusOK, notificationToResponse(notification))
}

// Delete handles DELETE /api/notifications/{id}.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.notificationService.Delete(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.listCache.Invalidate(r.Context(), notificationsListKey)
	w.WriteHeader(http.StatusNoContent)
}
