package http

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps holds the controllers and collaborators the router wires together.
type RouterDeps struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	AllowedOrigins []string

	Events      *controllers.EventController
	SavedEvents *controllers.SavedEventController
	Users       *controllers.UserController
	Tags        *controllers.TagController
}

// NewRouter initializes the HTTP router with all application routes and the middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.NewAuthenticator(d.Verifier, d.Logger)

	// Discovery
	mux.HandleFunc("GET /events", d.Events.SearchEvents)
	mux.HandleFunc("GET /events/{eventID}", d.Events.GetEvent)
	mux.HandleFunc("GET /tags", d.Tags.ListTags)

	// Mutation
	mux.HandleFunc("POST /events", auth.User(d.Events.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", auth.User(d.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth.User(d.Events.DeleteEvent))

	// Saved events
	mux.HandleFunc("POST /events/{eventID}/save", auth.User(d.SavedEvents.SaveEvent))
	mux.HandleFunc("DELETE /events/{eventID}/save", auth.User(d.SavedEvents.UnsaveEvent))

	// Me
	mux.HandleFunc("GET /users/me/events", auth.User(d.Users.ListMyEvents))
	mux.HandleFunc("GET /users/me/saved-events", auth.User(d.Users.ListMySavedEvents))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.LoggingMiddleware(d.Logger, h)
	h = chimw.Recoverer(h)
	h = middleware.CORS(d.AllowedOrigins, h)
	h = chimw.RequestID(h)
	return h
}
