package models

import "time"

// UserModel represents a registered account.
type UserModel struct {
	Base
	Email         string     `json:"email"           gorm:"uniqueIndex;not null"`
	Password      string     `json:"-"               gorm:"not null"`
	Name          string     `json:"name"`
	FullName      string     `json:"full_name"`
	AvatarURL     string     `json:"avatar_url"`
	JobTitle      string     `json:"job_title"`
	Company       string     `json:"company"`
	Location      string     `json:"location"`
	Website       string     `json:"website"`
	LinkedinURL   string     `json:"linkedin_url"`
	EmailVerified *time.Time `json:"email_verified"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a revocable login session bound to a JWT.
type UserSession struct {
	Base
	UserID    string     `json:"-"          gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:varchar(512)"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
