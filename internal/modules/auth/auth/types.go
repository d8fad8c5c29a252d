package auth

import (
	"errors"
	"time"
)

type RegisterDTO struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"  binding:"required"`
	Email     string `json:"email"      binding:"required,email"`
	Password  string `json:"password"   binding:"required,min=6"`
}

type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Created   time.Time `json:"created"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  authUser `json:"user"`
}

var (
	errUserExists    = errors.New("user already exists")
	errUserNotFound  = errors.New("auth user not found")
	errWrongPassword = errors.New("auth wrong password")
)
