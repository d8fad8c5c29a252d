package like

import (
	"errors"
	"strings"

	"github.com/engisim/core/internal/database"
	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ToggleLikeDTO struct {
	ProjectID string `json:"project_id" binding:"required"`
}

const (
	actionLiked   = "liked"
	actionUnliked = "unliked"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Toggle flips the caller's like on a project and keeps the counter in step.
func (s *Service) Toggle(userID, projectID string) (string, int, error) {
	var action string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.LikeModel
		err := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
			First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&models.LikeModel{}, "id = ?", existing.ID).Error; err != nil {
				return err
			}
			action = actionUnliked
			return tx.Model(&models.ProjectModel{}).Where("id = ? AND likes > 0", projectID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.LikeModel{UserID: userID, ProjectID: projectID}).Error; err != nil {
				return err
			}
			action = actionLiked
			return tx.Model(&models.ProjectModel{}).Where("id = ?", projectID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		return "", 0, err
	}

	var count int64
	if err := s.db.Model(&models.LikeModel{}).
		Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return "", 0, err
	}
	return action, int(count), nil
}

// Status returns the like count for a project and whether userID has liked it.
func (s *Service) Status(projectID, userID string) (int, bool, error) {
	var count int64
	if err := s.db.Model(&models.LikeModel{}).
		Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return 0, false, err
	}

	liked := false
	if userID != "" {
		var mine int64
		if err := s.db.Model(&models.LikeModel{}).
			Where("user_id = ? AND project_id = ?", userID, projectID).
			Count(&mine).Error; err != nil {
			return 0, false, err
		}
		liked = mine > 0
	}
	return int(count), liked, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, optionalAuthMW gin.HandlerFunc) {
	l := rg.Group("/likes")

	l.GET("", optionalAuthMW, h.status)
	l.POST("", authMW, h.toggle)
}

func (h *Handler) status(c *gin.Context) {
	projectID := strings.TrimSpace(c.Query("project_id"))
	if projectID == "" {
		response.BadRequest(c, "project_id is required")
		return
	}

	count, liked, err := h.svc.Status(projectID, middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"likes": count, "liked": liked})
}

func (h *Handler) toggle(c *gin.Context) {
	var dto ToggleLikeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	action, count, err := h.svc.Toggle(middleware.CurrentUserID(c), dto.ProjectID)
	if err != nil {
		if database.IsDuplicateKey(err) {
			// Concurrent double tap, the first press won.
			response.BadRequest(c, "Already liked")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"action": action, "likes": count})
}
