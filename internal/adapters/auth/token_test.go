package auth

import (
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	now := time.Now()
	verifier := NewJWTVerifier(secret)

	tests := []struct {
		name    string
		token   string
		wantID  string
		wantErr bool
		errIs   error
	}{
		{
			name: "valid token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{
				Subject:   "user-123",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
			wantID: "user-123",
		},
		{
			name: "expired token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{
				Subject:   "user-123",
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
			wantErr: true,
			errIs:   domain.ErrTokenExpired,
		},
		{
			name:    "wrong secret",
			token:   signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "user-123"}),
			wantErr: true,
		},
		{
			name:    "other hmac algorithm",
			token:   signToken(t, jwt.SigningMethodHS512, []byte(secret), jwt.RegisteredClaims{Subject: "user-123"}),
			wantErr: true,
		},
		{
			name:    "missing subject",
			token:   signToken(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{}),
			wantErr: true,
			errIs:   ErrMissingSubject,
		},
		{
			name:    "garbage",
			token:   "not-a-jwt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifier.Verify(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got)
		})
	}
}
