package model

import "time"

// BookmarkModel is the GORM-specific struct for the 'user_bookmarks' table.
// One row per (user, establishment) pair.
type BookmarkModel struct {
	ID              int64               `gorm:"primaryKey;autoIncrement"`
	UserID          int64               `gorm:"not null;uniqueIndex:idx_user_bookmarks_pair"`
	EstablishmentID int64               `gorm:"not null;uniqueIndex:idx_user_bookmarks_pair"`
	Establishment   *EstablishmentModel `gorm:"foreignKey:EstablishmentID;constraint:OnDelete:CASCADE"`
	User            *UserModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time           `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "user_bookmarks"
}

// ArchiveModel is the GORM-specific struct for the 'user_archives' table.
// Same shape as BookmarkModel; a separate relation keeps the lists independent.
type ArchiveModel struct {
	ID              int64               `gorm:"primaryKey;autoIncrement"`
	UserID          int64               `gorm:"not null;uniqueIndex:idx_user_archives_pair"`
	EstablishmentID int64               `gorm:"not null;uniqueIndex:idx_user_archives_pair"`
	Establishment   *EstablishmentModel `gorm:"foreignKey:EstablishmentID;constraint:OnDelete:CASCADE"`
	User            *UserModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time           `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ArchiveModel) TableName() string {
	return "user_archives"
}
