package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	switch token {
	case "good":
		return "user-1", nil
	case "other":
		return "user-2", nil
	case "expired":
		return "", domain.ErrTokenExpired
	}
	return "", errors.New("bad token")
}

type stubEventService struct{ domain.EventService }

func (stubEventService) SearchEvents(ctx context.Context, f domain.FilterSpec) (*domain.SearchResult, error) {
	return &domain.SearchResult{Page: 1, PageSize: f.Pagination.PageSize}, nil
}

// UpdateEvent treats user-1 as the contributor of every event.
func (stubEventService) UpdateEvent(ctx context.Context, eventID, contributorID string, in *domain.EventInput) error {
	if contributorID != "user-1" {
		return domain.ErrForbidden
	}
	return nil
}

func (stubEventService) DeleteEvent(ctx context.Context, eventID, contributorID string) error {
	panic("boom")
}

type stubTagService struct{}

func (stubTagService) ListTags(ctx context.Context) ([]*domain.Tag, error) { return []*domain.Tag{}, nil }

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := stubEventService{}
	return NewRouter(RouterDeps{
		Logger:         logger,
		Verifier:       stubVerifier{},
		AllowedOrigins: []string{"https://events.campus.edu"},
		Events:         controllers.NewEventController(logger, events),
		SavedEvents:    controllers.NewSavedEventController(logger, nil),
		Users:          controllers.NewUserController(logger, events),
		Tags:           controllers.NewTagController(logger, stubTagService{}),
	})
}

func TestRouter(t *testing.T) {
	router := newTestRouter()
	const eventPath = "/events/7f9c2a4e-1b3d-4c5e-8f6a-0b1c2d3e4f50"

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{"public search", http.MethodGet, "/events", "", "", http.StatusOK},
		{"public tags", http.MethodGet, "/tags", "", "", http.StatusOK},
		{"create needs a token", http.MethodPost, "/events", "", `{"name":"Demo"}`, http.StatusUnauthorized},
		{"update rejects a bad token", http.MethodPut, eventPath, "bad", `{"name":"Demo"}`, http.StatusUnauthorized},
		{"update rejects an expired token", http.MethodPut, eventPath, "expired", `{"name":"Demo"}`, http.StatusUnauthorized},
		{"contributor updates", http.MethodPut, eventPath, "good", `{"name":"Demo"}`, http.StatusOK},
		{"another user cannot update", http.MethodPut, eventPath, "other", `{"name":"Demo"}`, http.StatusUnauthorized},
		{"save needs a token", http.MethodPost, eventPath + "/save", "", "", http.StatusUnauthorized},
		{"my events with token", http.MethodGet, "/users/me/events", "good", "", http.StatusOK},
		{"unrouted method", http.MethodPatch, eventPath, "good", "", http.StatusMethodNotAllowed},
		{"panics are recovered", http.MethodDelete, eventPath, "good", "", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(chimw.RequestIDHeader))
		})
	}
}
