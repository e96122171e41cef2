package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/types"
)

func TestNormalizeSubdomain(t *testing.T) {
	assert.Equal(t, "alice-and-bob", NormalizeSubdomain("  Alice-And-Bob "))
	assert.Equal(t, "app", NormalizeSubdomain("APP"))
}

func TestValidSubdomain(t *testing.T) {
	valid := []string{"alice-and-bob", "abc", "a1b", "couple123"}
	for _, s := range valid {
		assert.True(t, validSubdomain(s), s)
	}

	invalid := []string{
		"",
		"ab",            // too short
		"-leading",      // leading hyphen
		"trailing-",     // trailing hyphen
		"has.dots",      // not a single label
		"has_underscore",
		"Uppercase",     // callers normalize first
		"app",           // reserved
		"www",
		"api",
	}
	for _, s := range invalid {
		assert.False(t, validSubdomain(s), s)
	}
}

func newTestUser(t *testing.T, svc *AuthService, email string) *models.User {
	t.Helper()
	user, _, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test",
		Email:    email,
		Password: "testpassword123",
	})
	require.NoError(t, err)
	return user
}

func TestClaimSubdomainLifecycle(t *testing.T) {
	db := setupDB(t)
	auth := NewAuthService(db, "test-secret")
	svc := NewCoupleService(db, nil)
	ctx := context.Background()

	alice := newTestUser(t, auth, "alice@example.com")
	carol := newTestUser(t, auth, "carol@example.com")

	couple, err := svc.ClaimSubdomain(ctx, alice.ID, &types.ClaimSubdomainRequest{
		Subdomain: "Alice-And-Bob",
		Title:     "Alice & Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice-and-bob", couple.Subdomain)
	assert.Equal(t, alice.ID, couple.Partner1ID)
	assert.Nil(t, couple.Partner2ID)
	assert.True(t, couple.HasPartner(alice.ID))
	assert.False(t, couple.HasPartner(carol.ID))

	available, err := svc.SubdomainAvailable(ctx, "alice-and-bob")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.SubdomainAvailable(ctx, "carol-and-dave")
	require.NoError(t, err)
	assert.True(t, available)

	// The losing claim is rejected by the unique index and leaves the
	// claimant uncoupled.
	_, err = svc.ClaimSubdomain(ctx, carol.ID, &types.ClaimSubdomainRequest{Subdomain: "alice-and-bob"})
	assert.ErrorIs(t, err, ErrSubdomainTaken)

	var carolAfter models.User
	require.NoError(t, db.First(&carolAfter, "id = ?", carol.ID).Error)
	assert.Nil(t, carolAfter.CoupleID)

	_, err = svc.ClaimSubdomain(ctx, carol.ID, &types.ClaimSubdomainRequest{Subdomain: "admin"})
	assert.ErrorIs(t, err, ErrSubdomainInvalid)

	_, err = svc.ClaimSubdomain(ctx, alice.ID, &types.ClaimSubdomainRequest{Subdomain: "second-site"})
	assert.ErrorIs(t, err, ErrAlreadyInCouple)
}

func TestAcceptInvite(t *testing.T) {
	db := setupDB(t)
	auth := NewAuthService(db, "test-secret")
	svc := NewCoupleService(db, nil)
	ctx := context.Background()

	alice := newTestUser(t, auth, "alice@example.com")
	bob := newTestUser(t, auth, "bob@example.com")
	carol := newTestUser(t, auth, "carol@example.com")

	couple, err := svc.ClaimSubdomain(ctx, alice.ID, &types.ClaimSubdomainRequest{Subdomain: "alice-and-bob"})
	require.NoError(t, err)

	joined, err := svc.AcceptInvite(ctx, couple.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, joined.Partner2ID)
	assert.Equal(t, bob.ID, *joined.Partner2ID)
	assert.True(t, joined.HasPartner(bob.ID))

	// The couple is full now.
	_, err = svc.AcceptInvite(ctx, couple.ID, carol.ID)
	assert.ErrorIs(t, err, ErrCoupleFull)

	// Linked partners cannot join anything else.
	_, err = svc.AcceptInvite(ctx, couple.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyInCouple)
}

func TestGetBySubdomainNormalizes(t *testing.T) {
	db := setupDB(t)
	auth := NewAuthService(db, "test-secret")
	svc := NewCoupleService(db, nil)
	ctx := context.Background()

	alice := newTestUser(t, auth, "alice@example.com")
	_, err := svc.ClaimSubdomain(ctx, alice.ID, &types.ClaimSubdomainRequest{Subdomain: "alice-and-bob"})
	require.NoError(t, err)

	couple, err := svc.GetBySubdomain(ctx, "Alice-And-Bob")
	require.NoError(t, err)
	assert.Equal(t, "alice-and-bob", couple.Subdomain)

	_, err = svc.GetBySubdomain(ctx, "no-such-site")
	assert.ErrorIs(t, err, ErrCoupleNotFound)
}
