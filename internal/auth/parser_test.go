package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iban-scanner/internal/model"
)

func TestParser_RoundTrip(t *testing.T) {
	parser := NewParser("secret")
	userID := uuid.New()
	orgID := uuid.New()

	token, err := parser.Sign(&Claims{
		UserID: userID,
		OrgID:  orgID,
		Role:   model.UserRoleOperator,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	claims, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, orgID, claims.OrgID)
	assert.Equal(t, model.UserRoleOperator, claims.Role)
}

func TestParser_Rejects(t *testing.T) {
	parser := NewParser("secret")

	expired, err := parser.Sign(&Claims{
		UserID: uuid.New(),
		Role:   model.UserRoleDevice,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	require.NoError(t, err)

	foreign, err := NewParser("other").Sign(&Claims{UserID: uuid.New(), Role: model.UserRoleAdmin})
	require.NoError(t, err)

	anonymous, err := parser.Sign(&Claims{Role: model.UserRoleAdmin})
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"expired":      expired,
		"wrong secret": foreign,
		"no user":      anonymous,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
