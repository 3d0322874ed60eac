package models

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// SessionUser is the user identity the upstream API returns on login/register.
type SessionUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
