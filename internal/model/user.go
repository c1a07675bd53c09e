package model

import "time"

// Role values stored in users.role. New registrations always get RoleUser;
// admins are promoted directly in the database.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an application user record as stored in the `users`
// table. The password hash is never serialized; handlers return the
// struct as-is and rely on the "-" tag to keep the digest private.
type User struct {
	ID           uint64    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Photo        *string   `json:"photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
