package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/engisim/core/internal/database"
	"github.com/engisim/core/internal/models"
	sessionpkg "github.com/engisim/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	first := strings.TrimSpace(dto.FirstName)
	last := strings.TrimSpace(dto.LastName)
	u := models.UserModel{
		Email:    email,
		Password: string(hash),
		Name:     first,
		FullName: strings.TrimSpace(first + " " + last),
	}
	if err := s.db.Create(&u).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, errUserExists
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Login(email, password, ip, ua string) (string, *models.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, errWrongPassword
	}

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	s.db.Model(&models.UserModel{}).Where("id = ?", u.ID).
		Updates(map[string]interface{}{"last_login_time": now, "last_login_ip": ip})

	return token, &u, nil
}

func (s *Service) Logout(userID, sessionID string) error {
	if sessionID == "" {
		return sessionpkg.RevokeAll(s.db, userID)
	}
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
