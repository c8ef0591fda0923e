package domain

import "time"

// User represents a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenClaims is the identity embedded in a session token
type TokenClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// Role is carried for forward compatibility with role-gated routes.
	// Nothing populates it today.
	Role string `json:"role,omitempty"`
}

// SignupRequest represents a signup submission
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest represents a signin submission
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninResponse is the success body for POST /api/auth/signin
type SigninResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// PublicUser is the client-visible subset of a User
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile is the account summary returned by POST /api/auth/profile
type Profile struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Blogs     []Blog    `json:"blogs"`
}
