package domain

import "time"

// User is a person who has signed in with Google at least once.
type User struct {
	ID        string    `json:"id"`
	GoogleID  string    `json:"google_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is a server-side login. ID is the hash of the token held in the
// browser cookie; the token itself is never stored.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	// Renewed is set by validation when the expiry was pushed out and the
	// cookie needs reissuing.
	Renewed bool `json:"-"`
}

// Identity is what the OAuth provider vouches for after a successful code
// exchange.
type Identity struct {
	Subject string
	Name    string
}
