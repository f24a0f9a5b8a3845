package auth

import (
	"context"
	"testing"
	"time"

	"github.com/example/astroshop/pkg/config"
	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(&config.AdminConfig{
		Password:   "admin123",
		SessionTTL: time.Hour,
	}, storage.NewMemoryStorage(), zap.NewNop())
}

func TestLoginVerifyLogout(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	token, err := svc.Login(ctx, "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(ctx, token))

	svc.Logout(ctx, token)
	assert.ErrorIs(t, svc.Verify(ctx, token), ErrNoSession)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsEmptyConfiguredPassword(t *testing.T) {
	svc := NewService(&config.AdminConfig{SessionTTL: time.Hour},
		storage.NewMemoryStorage(), zap.NewNop())

	_, err := svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyUnknownToken(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.Verify(context.Background(), "nope"), ErrNoSession)
	assert.ErrorIs(t, svc.Verify(context.Background(), ""), ErrNoSession)
}

func TestRecordSignInUpsertsByUID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	svc.RecordSignIn(ctx, models.UserAccount{
		UID:         "uid-1",
		Email:       "cosmo@example.com",
		DisplayName: "Cosmo",
		Provider:    "google.com",
	})

	first := svc.Accounts(ctx)
	require.Len(t, first, 1)
	created := first[0].CreatedAt
	require.False(t, created.IsZero())

	// Second sign-in updates the account but preserves CreatedAt.
	svc.RecordSignIn(ctx, models.UserAccount{
		UID:         "uid-1",
		Email:       "cosmo@example.com",
		DisplayName: "Cosmo Stargazer",
		Provider:    "google.com",
	})

	accounts := svc.Accounts(ctx)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Cosmo Stargazer", accounts[0].DisplayName)
	assert.Equal(t, created, accounts[0].CreatedAt)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", current.UID)
}

func TestClearCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	svc.RecordSignIn(ctx, models.UserAccount{UID: "uid-1"})
	svc.ClearCurrentUser(ctx)

	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// Account history survives sign-out.
	assert.Len(t, svc.Accounts(ctx), 1)
}
