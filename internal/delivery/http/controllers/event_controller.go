package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"

	"github.com/google/uuid"
)

// EventFields are the event attributes accepted on create and update.
type EventFields struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Image       *string    `json:"image"`
	Status      string     `json:"status"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Tags        []string   `json:"tags"`
	// Capacity of null means unlimited.
	Capacity *int `json:"capacity"`
}

// Validate implements Validator.
func (f EventFields) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}
	if f.Status != "" && !domain.EventStatus(f.Status).Valid() {
		errs = append(errs, "status must be one of draft, published, cancelled")
	}
	if f.StartTime != nil && f.EndTime != nil && f.EndTime.Before(*f.StartTime) {
		errs = append(errs, "end_time must not be before start_time")
	}
	if f.Capacity != nil && *f.Capacity < domain.UnlimitedCapacity {
		errs = append(errs, "capacity must be -1 or greater")
	}
	return errs
}

func (f EventFields) input() *domain.EventInput {
	return &domain.EventInput{
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		Image:       f.Image,
		Status:      domain.EventStatus(f.Status),
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		Capacity:    f.Capacity,
		Tags:        f.Tags,
	}
}

// OrganizationRef points an event at an existing organization.
type OrganizationRef struct {
	OrgID string `json:"org_id"`
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	EventFields
	Organization *OrganizationRef `json:"organization"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	errs := c.EventFields.Validate()
	if c.Organization != nil {
		if _, err := uuid.Parse(c.Organization.OrgID); err != nil {
			errs = append(errs, "organization.org_id must be a UUID")
		}
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /events/{eventID}. It replaces every field and the tag set.
type UpdateEventRequest struct {
	EventFields
}

// Validate implements Validator. Field rules are applied by the service once the caller is
// known to be the contributor.
func (UpdateEventRequest) Validate() []string { return nil }

// EventIDResponse carries the id of a created or updated event.
type EventIDResponse struct {
	EventID string `json:"event_id"`
}

// EventIDSuccessResponse is the success response envelope for event writes.
type EventIDSuccessResponse struct {
	Data  EventIDResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ResultSize holds the total number of events matching a search.
type ResultSize struct {
	EventCount int `json:"event_count"`
}

// SearchEventsResponse is one page of search results.
type SearchEventsResponse struct {
	Results    []*domain.EventRow `json:"results"`
	ResultSize ResultSize         `json:"resultSize"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

// SearchEventsSuccessResponse is the success response envelope for event searches.
type SearchEventsSuccessResponse struct {
	Data  SearchEventsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID}.
type GetEventSuccessResponse struct {
	Data  *domain.EventRow  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func newSearchEventsResponse(res *domain.SearchResult) SearchEventsResponse {
	results := res.Events
	if results == nil {
		results = []*domain.EventRow{}
	}
	return SearchEventsResponse{
		Results:    results,
		ResultSize: ResultSize{EventCount: res.Total},
		Page:       res.Page,
		PageSize:   res.PageSize,
	}
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// SearchEvents godoc
// @Summary Search events
// @Description Filters events by free text, tag intersection, name, start-time window and status. Every listed tag must be present on a result.
// @Tags events
// @Produce json
// @Param query query string false "Free-text match on the event name"
// @Param tags query string false "Comma-separated tag names; results carry all of them"
// @Param name query string false "Name filter"
// @Param from query string false "Earliest start time (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Latest start time (RFC 3339 or YYYY-MM-DD)"
// @Param status query string false "draft, published or cancelled"
// @Param sort query string false "start, posted, updated, alpha_asc or alpha_desc"
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size (default 3, max 100)"
// @Success 200 {object} controllers.SearchEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) SearchEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := helpers.ParseFilterSpec(r, domain.DefaultSearchPageSize)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	res, err := c.Service.SearchEvents(r.Context(), filter)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newSearchEventsResponse(res))
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns one event with contributor, organization and tags.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	row, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, row)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates the event, attaches the known tags and links the optional organization in one step. Unknown tag names are ignored. The caller becomes the contributor.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventIDSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (organization)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request, userID string) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := req.input()
	if req.Organization != nil {
		in.OrganizationID = &req.Organization.OrgID
	}
	eventID, err := c.Service.CreateEvent(r.Context(), userID, in)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EventIDResponse{EventID: eventID})
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Replaces every field and the tag set of an event. Only the contributor may update it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body UpdateEventRequest true "Event data"
// @Success 200 {object} controllers.EventIDSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (missing token or not the contributor)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request, userID string) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), eventID, userID, req.input()); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventIDResponse{EventID: eventID})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event with its tag, organization and saved associations. Only the contributor may delete it.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventIDSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request, userID string) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventIDResponse{EventID: eventID})
}
