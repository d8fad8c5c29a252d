package models

// CommentModel is a comment on a project.
// UserName and UserAvatar are snapshots taken at comment time, so later profile
// edits do not rewrite historical attribution.
type CommentModel struct {
	Base
	UserID     string `json:"user_id"     gorm:"index;not null"`
	ProjectID  string `json:"project_id"  gorm:"index;not null"`
	Content    string `json:"content"     gorm:"type:text;not null"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_image"`
}

func (CommentModel) TableName() string { return "comments" }
