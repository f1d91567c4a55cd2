package entities

import "time"

// Session is the explicit per-request identity record resolved from a
// bearer token. Handlers receive it directly instead of reading ambient
// state; the Role field is a display hint, never an authorization input.
type Session struct {
	Token     string    `json:"-"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
