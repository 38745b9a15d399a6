package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// UserHandler serves a request on behalf of an authenticated user.
type UserHandler func(w http.ResponseWriter, r *http.Request, userID string)

var (
	errNoCredentials        = errors.New("missing bearer token")
	errMalformedCredentials = errors.New(`authorization header must be "Bearer <token>"`)
)

// bearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errNoCredentials
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", errMalformedCredentials
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errNoCredentials
	}
	return token, nil
}

// Authenticator resolves the user behind a request's bearer token.
type Authenticator struct {
	verifier domain.TokenVerifier
	logger   *slog.Logger
}

func NewAuthenticator(verifier domain.TokenVerifier, logger *slog.Logger) *Authenticator {
	return &Authenticator{verifier: verifier, logger: logger}
}

// User adapts next into a handler that only runs for a verified caller, whose user ID
// (the token subject) is passed to next. Anything else gets a 401 envelope.
func (a *Authenticator) User(next UserHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
			return
		}

		userID, err := a.verifier.Verify(token)
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "token expired")
			return
		case err != nil:
			a.logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid token")
			return
		case userID == "":
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid token")
			return
		}

		next(w, r, userID)
	}
}
