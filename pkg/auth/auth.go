package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/example/astroshop/pkg/config"
	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials is returned on a bad admin password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrNoSession is returned for an unknown or expired admin token.
	ErrNoSession = errors.New("auth: no such session")
)

// Service issues admin session tokens and records account metadata
// supplied by the external auth provider. Nothing in the cart/order
// core depends on it.
type Service struct {
	storage    storage.Storage
	logger     *zap.Logger
	password   string
	sessionTTL time.Duration
}

type session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func NewService(cfg *config.AdminConfig, st storage.Storage, logger *zap.Logger) *Service {
	return &Service{
		storage:    st,
		logger:     logger.Named("auth"),
		password:   cfg.Password,
		sessionTTL: cfg.SessionTTL,
	}
}

// Login checks the admin password and mints a session token.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if s.password == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	sess := session{Token: token, CreatedAt: time.Now().UTC()}
	key := storage.ForSession(storage.KeySessionBase, token)
	if err := s.storage.SetJSON(ctx, key, sess, s.sessionTTL); err != nil {
		return "", err
	}

	s.logger.Info("admin session created")
	return token, nil
}

// Verify reports whether the token names a live admin session.
func (s *Service) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoSession
	}
	var sess session
	err := s.storage.GetJSON(ctx, storage.ForSession(storage.KeySessionBase, token), &sess)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return ErrNoSession
	}
	return err
}

// Logout deletes the session token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.storage.Delete(ctx, storage.ForSession(storage.KeySessionBase, token)); err != nil {
		s.logger.Warn("session delete failed", zap.Error(err))
	}
}

// RecordSignIn upserts provider account metadata by uid, preserving
// the original CreatedAt, and marks the account as current.
func (s *Service) RecordSignIn(ctx context.Context, account models.UserAccount) {
	now := time.Now().UTC()
	account.LastLoginAt = now
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}

	accounts := s.Accounts(ctx)
	found := false
	for i := range accounts {
		if accounts[i].UID == account.UID {
			account.CreatedAt = accounts[i].CreatedAt
			accounts[i] = account
			found = true
			break
		}
	}
	if !found {
		accounts = append(accounts, account)
	}

	if err := s.storage.SetJSON(ctx, storage.KeyAccounts, accounts, 0); err != nil {
		s.logger.Warn("account persist failed", zap.Error(err))
	}
	if err := s.storage.SetJSON(ctx, storage.KeyCurrentUser, account, 0); err != nil {
		s.logger.Warn("current user persist failed", zap.Error(err))
	}
}

// Accounts returns every recorded provider account.
func (s *Service) Accounts(ctx context.Context) []models.UserAccount {
	var accounts []models.UserAccount
	err := s.storage.GetJSON(ctx, storage.KeyAccounts, &accounts)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Warn("account read failed", zap.Error(err))
	}
	return accounts
}

// CurrentUser returns the most recently signed-in account.
func (s *Service) CurrentUser(ctx context.Context) (models.UserAccount, error) {
	var account models.UserAccount
	err := s.storage.GetJSON(ctx, storage.KeyCurrentUser, &account)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.UserAccount{}, ErrNoSession
	}
	return account, err
}

// ClearCurrentUser signs the current account out.
func (s *Service) ClearCurrentUser(ctx context.Context) {
	if err := s.storage.Delete(ctx, storage.KeyCurrentUser); err != nil {
		s.logger.Warn("current user delete failed", zap.Error(err))
	}
}
