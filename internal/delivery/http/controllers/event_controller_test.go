package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testEventID = "7f9c2a4e-1b3d-4c5e-8f6a-0b1c2d3e4f50"
	testOrgID   = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err             error
	searchResult    *domain.SearchResult
	row             *domain.EventRow
	createdID       string
	lastFilter      domain.FilterSpec
	lastInput       *domain.EventInput
	lastEventID     string
	lastContributor string
}

func (f *fakeEventService) SearchEvents(ctx context.Context, filter domain.FilterSpec) (*domain.SearchResult, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.searchResult, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID string) (*domain.EventRow, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.row, nil
}

func (f *fakeEventService) CreateEvent(ctx context.Context, contributorID string, in *domain.EventInput) (string, error) {
	f.lastContributor = contributorID
	f.lastInput = in
	if f.err != nil {
		return "", f.err
	}
	return f.createdID, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID, contributorID string, in *domain.EventInput) error {
	f.lastEventID = eventID
	f.lastContributor = contributorID
	f.lastInput = in
	return f.err
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID, contributorID string) error {
	f.lastEventID = eventID
	f.lastContributor = contributorID
	return f.err
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw), "response must be valid JSON envelope")
	if data != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return helpers.APIResponse{Data: data, Error: raw.Error}
}

func TestEventController_SearchEvents(t *testing.T) {
	org := "Robotics Club"
	fake := &fakeEventService{searchResult: &domain.SearchResult{
		Events: []*domain.EventRow{{
			Event:            domain.Event{ID: "ev-1", Name: "Demo", Status: domain.EventStatusPublished, Capacity: -1},
			ContributorName:  "Ada",
			OrganizationName: &org,
			Tags:             []string{"Engineering", "Workshop"},
		}},
		Total:    4,
		Page:     2,
		PageSize: 3,
	}}
	ctrl := NewEventController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "/events?tags=Workshop,Engineering&sort=posted&page=2", nil)
	rr := httptest.NewRecorder()
	ctrl.SearchEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got SearchEventsResponse
	env := decodeEnvelope(t, rr, &got)
	require.Nil(t, env.Error)
	assert.Equal(t, 4, got.ResultSize.EventCount)
	assert.Equal(t, 3, got.PageSize)
	require.Len(t, got.Results, 1)
	assert.Equal(t, []string{"Engineering", "Workshop"}, got.Results[0].Tags)
	assert.Equal(t, "Ada", got.Results[0].ContributorName)

	assert.Equal(t, []string{"Workshop", "Engineering"}, fake.lastFilter.Tags)
	assert.Equal(t, domain.SortPosted, fake.lastFilter.Sort)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: domain.DefaultSearchPageSize}, fake.lastFilter.Pagination)
	assert.Empty(t, fake.lastFilter.ContributorID)
}

func TestEventController_SearchEventsErrors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"bad date", "/events?from=soon", nil, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from"},
		{"datastore failure is not leaked", "/events", errors.New("pq: relation does not exist"), http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger, &fakeEventService{err: tt.err})
			rr := httptest.NewRecorder()
			ctrl.SearchEvents(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr, nil)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Contains(t, env.Error.Message, tt.wantMsg)
			assert.NotContains(t, env.Error.Message, "pq:")
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		err        error
		wantStatus int
	}{
		{"success", testEventID, nil, http.StatusOK},
		{"not a uuid", "ev-1", nil, http.StatusBadRequest},
		{"missing", "", nil, http.StatusBadRequest},
		{"not found", testEventID, domain.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.err, row: &domain.EventRow{Event: domain.Event{ID: testEventID, Name: "Demo"}, Tags: []string{}}}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var row domain.EventRow
				env := decodeEnvelope(t, rr, &row)
				require.Nil(t, env.Error)
				assert.Equal(t, testEventID, row.ID)
			}
		})
	}
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantMsg    string
		checkInput func(t *testing.T, in *domain.EventInput)
	}{
		{
			name:       "success",
			body:       fmt.Sprintf(`{"name":"Demo","tags":["Workshop","Engineering"],"capacity":null,"start_time":"2026-03-01T18:00:00Z","organization":{"org_id":%q}}`, testOrgID),
			wantStatus: http.StatusCreated,
			checkInput: func(t *testing.T, in *domain.EventInput) {
				assert.Equal(t, "Demo", in.Name)
				assert.Equal(t, []string{"Workshop", "Engineering"}, in.Tags)
				assert.Nil(t, in.Capacity)
				require.NotNil(t, in.OrganizationID)
				assert.Equal(t, testOrgID, *in.OrganizationID)
				require.NotNil(t, in.StartTime)
			},
		},
		{
			name:       "missing name",
			body:       `{"description":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "name is required",
		},
		{
			name:       "bad status and capacity",
			body:       `{"name":"Demo","status":"archived","capacity":-3}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "capacity must be -1 or greater",
		},
		{
			name:       "bad organization id",
			body:       `{"name":"Demo","organization":{"org_id":"robotics"}}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "org_id must be a UUID",
		},
		{
			name:       "unknown field rejected",
			body:       `{"name":"Demo","id":"custom"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "unknown field",
		},
		{
			name:       "organization not found",
			body:       fmt.Sprintf(`{"name":"Demo","organization":{"org_id":%q}}`, testOrgID),
			fakeErr:    domain.ErrOrganizationNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "organization not found",
		},
		{
			name:       "tag step failed",
			body:       `{"name":"Demo","tags":["Workshop"]}`,
			fakeErr:    fmt.Errorf("create event: %w: %w", domain.ErrTagAttachFailed, errors.New("conn reset")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "failed to attach tags",
		},
		{
			name:       "organization step failed",
			body:       fmt.Sprintf(`{"name":"Demo","organization":{"org_id":%q}}`, testOrgID),
			fakeErr:    fmt.Errorf("create event: %w: %w", domain.ErrOrganizationLinkFailed, errors.New("conn reset")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "failed to link organization",
		},
		{
			name:       "generic failure",
			body:       `{"name":"Demo"}`,
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr, createdID: testEventID}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req, "user-123")

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var data EventIDResponse
			env := decodeEnvelope(t, rr, &data)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, env.Error)
				assert.Equal(t, testEventID, data.EventID)
				assert.Equal(t, "user-123", fake.lastContributor)
				tt.checkInput(t, fake.lastInput)
				return
			}
			require.NotNil(t, env.Error, "error response must have error set")
			assert.Contains(t, env.Error.Message, tt.wantMsg)
			assert.NotContains(t, env.Error.Message, "conn reset")
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{"success", testEventID, `{"name":"Demo v2","tags":[]}`, nil, http.StatusOK, ""},
		{"organization not accepted on update", testEventID, fmt.Sprintf(`{"name":"Demo","organization":{"org_id":%q}}`, testOrgID), nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"bad id", "nope", `{"name":"Demo"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"not the contributor", testEventID, `{"name":"Demo"}`, domain.ErrForbidden, http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"not the contributor with an invalid body", testEventID, `{"name":"","status":"archived"}`, domain.ErrForbidden, http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"contributor with an invalid body", testEventID, `{"name":""}`, fmt.Errorf("%w: name is required", domain.ErrInvalidInput), http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"not found", testEventID, `{"name":"Demo"}`, domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPut, "/events/"+tt.eventID, bytes.NewBufferString(tt.body))
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req, "user-1")

			require.Equal(t, tt.wantStatus, rr.Code)
			var data EventIDResponse
			env := decodeEnvelope(t, rr, &data)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			assert.Equal(t, testEventID, data.EventID)
			assert.Equal(t, "user-1", fake.lastContributor)
			assert.Equal(t, "Demo v2", fake.lastInput.Name)
			assert.Nil(t, fake.lastInput.OrganizationID)
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"not the contributor", domain.ErrForbidden, http.StatusUnauthorized},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "/events/"+testEventID, nil)
			req.SetPathValue("eventID", testEventID)
			rr := httptest.NewRecorder()

			ctrl.DeleteEvent(rr, req, "user-1")

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, testEventID, fake.lastEventID)
			assert.Equal(t, "user-1", fake.lastContributor)
		})
	}
}
