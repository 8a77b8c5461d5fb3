package model

import "time"

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User is the wire shape for a user account. The password hash and Google
// subject id never leave the server.
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Avatar       *string   `json:"avatar"`
	Provider     string    `json:"provider"`
	GoogleID     string    `json:"-"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
