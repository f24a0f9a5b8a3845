package storage

import (
	"context"
	"errors"
	"time"
)

// Keys under which the storefront persists its state. Carts get a
// per-session suffix appended with ForSession.
const (
	KeyCart        = "astro_cart"
	KeyStock       = "astro_stock"
	KeyOrders      = "astro_orders"
	KeyAccounts    = "astro_user_accounts"
	KeyCurrentUser = "astro_current_user"
	KeySessionBase = "astro_admin_session"
)

// ErrKeyNotFound is returned by GetJSON when the key has never been
// written (or has expired).
var ErrKeyNotFound = errors.New("storage: key not found")

// Storage is a JSON key-value store. The authoritative copy of every
// storefront collection lives here; stores reload from it on each
// access and overwrite it whole on each mutation (last writer wins,
// no versioning).
type Storage interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// ForSession namespaces a key by session id. An empty session id keeps
// the bare key.
func ForSession(key, sessionID string) string {
	if sessionID == "" {
		return key
	}
	return key + ":" + sessionID
}
