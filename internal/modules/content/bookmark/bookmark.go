package bookmark

import (
	"strings"

	"github.com/engisim/core/internal/database"
	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateBookmarkDTO struct {
	ProjectID string `json:"project_id" binding:"required"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Create(userID, projectID string) (*models.BookmarkModel, error) {
	b := models.BookmarkModel{UserID: userID, ProjectID: projectID}
	return &b, s.db.Create(&b).Error
}

// Remove is idempotent, deleting a missing bookmark is not an error.
func (s *Service) Remove(userID, projectID string) error {
	return s.db.Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&models.BookmarkModel{}).Error
}

func (s *Service) IsSaved(userID, projectID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.BookmarkModel{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	return count > 0, err
}

// ListProjects returns the caller's saved projects, most recently saved first.
func (s *Service) ListProjects(userID string) ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	err := s.db.Model(&models.ProjectModel{}).
		Joins("JOIN bookmarks ON bookmarks.project_id = projects.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&projects).Error
	return projects, err
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	b := rg.Group("/bookmarks", authMW)

	b.GET("", h.get)
	b.POST("", h.create)
	b.DELETE("", h.remove)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	if projectID := strings.TrimSpace(c.Query("project_id")); projectID != "" {
		saved, err := h.svc.IsSaved(userID, projectID)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"saved": saved})
		return
	}

	projects, err := h.svc.ListProjects(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, projects)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateBookmarkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.svc.Create(middleware.CurrentUserID(c), dto.ProjectID)
	if err != nil {
		if database.IsDuplicateKey(err) {
			response.BadRequest(c, "Already bookmarked")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, b)
}

func (h *Handler) remove(c *gin.Context) {
	projectID := strings.TrimSpace(c.Query("project_id"))
	if projectID == "" {
		var dto CreateBookmarkDTO
		if err := c.ShouldBindJSON(&dto); err == nil {
			projectID = dto.ProjectID
		}
	}
	if projectID == "" {
		response.BadRequest(c, "project_id is required")
		return
	}

	if err := h.svc.Remove(middleware.CurrentUserID(c), projectID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"saved": false})
}
