package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// SaveEventSuccessResponse is the success response envelope for POST /events/{eventID}/save (201).
type SaveEventSuccessResponse struct {
	Data  *domain.SavedEvent `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type SavedEventController struct {
	Logger  *slog.Logger
	Service domain.SavedEventService
}

func NewSavedEventController(logger *slog.Logger, svc domain.SavedEventService) *SavedEventController {
	return &SavedEventController{
		Logger:  logger,
		Service: svc,
	}
}

// SaveEvent godoc
// @Summary Save an event
// @Description Bookmarks the event for the caller. Saving twice is rejected.
// @Tags saved-events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 201 {object} controllers.SaveEventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or already_saved"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/save [post]
func (c *SavedEventController) SaveEvent(w http.ResponseWriter, r *http.Request, userID string) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	saved, err := c.Service.SaveEvent(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, saved)
}

// UnsaveEvent godoc
// @Summary Unsave an event
// @Description Removes the caller's bookmark. Unsaving an event that is not saved is rejected.
// @Tags saved-events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_saved"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/save [delete]
func (c *SavedEventController) UnsaveEvent(w http.ResponseWriter, r *http.Request, userID string) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	if err := c.Service.UnsaveEvent(r.Context(), eventID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"event_id": eventID})
}
