package models

import "time"

// UserAccount is metadata from the external auth provider, recorded at
// sign-in. The cart/stock/order core never depends on it.
type UserAccount struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url"`
	Provider    string    `json:"provider"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}
