package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duetly/backend/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "testpassword123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "testpassword123", user.PasswordHash, "password is stored hashed")

	_, _, err = svc.Register(ctx, &types.RegisterRequest{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "testpassword123",
	})
	assert.ErrorIs(t, err, ErrUserExists)

	logged, _, err := svc.Login(ctx, "alice@example.com", "testpassword123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "testpassword123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, "test-secret")

	user, token, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "testpassword123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Nil(t, claims.CoupleID)

	// Tokens signed with another secret do not verify.
	other := NewAuthService(db, "other-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
