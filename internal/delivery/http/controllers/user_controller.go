package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// UserController serves the caller's own views of the event directory.
type UserController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewUserController(logger *slog.Logger, svc domain.EventService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// ListMyEvents godoc
// @Summary List my events
// @Description Searches only the events the caller contributed. Accepts the same filters as GET /events.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param query query string false "Free-text match on the event name"
// @Param tags query string false "Comma-separated tag names"
// @Param sort query string false "start, posted, updated, alpha_asc or alpha_desc"
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.SearchEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/events [get]
func (c *UserController) ListMyEvents(w http.ResponseWriter, r *http.Request, userID string) {
	c.searchScoped(w, r, domain.FilterSpec{ContributorID: userID})
}

// ListMySavedEvents godoc
// @Summary List my saved events
// @Description Searches only the events the caller saved. Accepts the same filters as GET /events.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param query query string false "Free-text match on the event name"
// @Param tags query string false "Comma-separated tag names"
// @Param sort query string false "start, posted, updated, alpha_asc or alpha_desc"
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.SearchEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/saved-events [get]
func (c *UserController) ListMySavedEvents(w http.ResponseWriter, r *http.Request, userID string) {
	c.searchScoped(w, r, domain.FilterSpec{SavedBy: userID})
}

// searchScoped runs the query-string search restricted by scope's ContributorID or SavedBy.
func (c *UserController) searchScoped(w http.ResponseWriter, r *http.Request, scope domain.FilterSpec) {
	filter, err := helpers.ParseFilterSpec(r, domain.DefaultMinePageSize)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	filter.ContributorID = scope.ContributorID
	filter.SavedBy = scope.SavedBy
	res, err := c.Service.SearchEvents(r.Context(), filter)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newSearchEventsResponse(res))
}
