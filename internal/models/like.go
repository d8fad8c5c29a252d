package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel is one (user, project) like membership row.
// No soft delete: a resurrected row would collide with the unique index on re-like.
type LikeModel struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"uniqueIndex:idx_likes_user_project;not null"`
	ProjectID string    `json:"project_id" gorm:"uniqueIndex:idx_likes_user_project;index;not null"`
	CreatedAt time.Time `json:"created"`
}

func (LikeModel) TableName() string { return "likes" }

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
