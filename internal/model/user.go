package model

import "encoding/json"

// UserID uniquely identifies a player account in the backend
type UserID string

// User is a player account as the admin backend reports it.
// Status and role are opaque strings owned by the backend ("active",
// "banned", "deleted" / "user", "admin" at the time of writing).
type User struct {
	ID        UserID `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UserList is the backend's paginated user listing
type UserList struct {
	Items []User `json:"items"`
	Total int    `json:"total"`
}

// UserDetail carries the optional sub-resources shown on the user detail
// page. Each field is best-effort: a missing backend endpoint leaves it nil.
type UserDetail struct {
	User     User
	Main     json.RawMessage
	Wallet   json.RawMessage
	Sessions json.RawMessage
}
