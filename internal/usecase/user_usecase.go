package usecase

import (
	"context"
	"time"
)

// UserSummary is the public projection of a profile. The password hash never
// leaves the usecase layer; only its presence is exposed so the login screen
// knows whether to ask for a password.
type UserSummary struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
	HasPassword bool      `json:"has_password"`
}

// Session is the result of a successful login. There is no token: the client
// identifies itself by user id on subsequent requests.
type Session struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// UserUsecase defines the profile operations. Accounts are intentionally
// lightweight; this is a shared family directory, not a hardened auth system.
type UserUsecase interface {
	// List returns all profiles, oldest first.
	List(ctx context.Context) ([]*UserSummary, error)

	// Create registers a profile. The password is optional; when given it is
	// stored as a bcrypt hash.
	Create(ctx context.Context, username, password string) (*UserSummary, error)

	// Login checks the selected profile's password. Profiles without a
	// password log in with an empty one; profiles with a password reject a
	// missing or wrong one.
	Login(ctx context.Context, userID int64, password string) (*Session, error)
}
