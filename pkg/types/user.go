package types

import "time"

// User is an authenticated account identified by an external identity URL.
// Users are created on first successful identity assertion, mutated when the
// asserted name or email changes on a later login, and never deleted.
type User struct {
	ID         int64     `json:"id"`
	OpenIDURL  string    `json:"openid_url"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	TimeCreate time.Time `json:"time_create"`
}
