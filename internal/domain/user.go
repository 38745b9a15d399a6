package domain

// TokenVerifier verifies a token and returns the authenticated user ID.
// Tokens are issued by the campus identity provider, not by this service.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
