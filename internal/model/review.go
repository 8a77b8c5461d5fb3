package model

import "time"

// Review field names match what the frontend reads; ids are opaque strings
// on the wire regardless of how the store keys them.
type Review struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Avatar    *string   `json:"avatar"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"createdAt"`
}
