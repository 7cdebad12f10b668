package entity

import "time"

// User is a directory profile. Accounts are deliberately lightweight: a
// username plus an optional bcrypt password hash. Profiles without a hash log
// in without any password at all.
type User struct {
	ID           int64
	Username     string // Unique.
	PasswordHash string // Empty when the profile has no password.
	CreatedAt    time.Time
}

// HasPassword reports whether a password was set when the profile was created.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// Bookmark links a user to an establishment they pinned.
type Bookmark struct {
	ID              int64
	UserID          int64
	EstablishmentID int64
	Establishment   *Establishment // Populated on reads, nil on writes.
	CreatedAt       time.Time
}

// Archive links a user to an establishment they tucked away. It is the same
// shape as Bookmark but lives in its own relation so the two lists stay
// independent.
type Archive struct {
	ID              int64
	UserID          int64
	EstablishmentID int64
	Establishment   *Establishment
	CreatedAt       time.Time
}
