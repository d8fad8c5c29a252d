package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookmarkModel is one (user, project) saved-project row, unique per pair.
type BookmarkModel struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"uniqueIndex:idx_bookmarks_user_project;not null"`
	ProjectID string    `json:"project_id" gorm:"uniqueIndex:idx_bookmarks_user_project;index;not null"`
	CreatedAt time.Time `json:"created"`
}

func (BookmarkModel) TableName() string { return "bookmarks" }

func (b *BookmarkModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
