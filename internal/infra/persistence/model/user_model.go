package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	PasswordHash string    `gorm:"column:password;type:varchar(255)"` // Empty for password-less profiles.
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
