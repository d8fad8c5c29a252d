package comment

import (
	"errors"
	"strings"

	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCommentDTO struct {
	ProjectID string `json:"project_id" binding:"required"`
	Content   string `json:"content"    binding:"required"`
}

var (
	errCommentNotFound = errors.New("comment not found")
	errNotCommentOwner = errors.New("not the comment author")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(projectID string) ([]models.CommentModel, error) {
	var comments []models.CommentModel
	return comments, s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&comments).Error
}

// Create stores the comment with the author's name and avatar frozen in,
// so later profile edits do not rewrite old threads.
func (s *Service) Create(userID string, dto *CreateCommentDTO) (*models.CommentModel, error) {
	var u models.UserModel
	if err := s.db.Select("id, name, full_name, avatar_url").
		Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}

	name := strings.TrimSpace(u.FullName)
	if name == "" {
		name = u.Name
	}

	c := models.CommentModel{
		UserID:     userID,
		ProjectID:  dto.ProjectID,
		Content:    dto.Content,
		UserName:   name,
		UserAvatar: u.AvatarURL,
	}
	return &c, s.db.Create(&c).Error
}

func (s *Service) Delete(id, userID string) error {
	var c models.CommentModel
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errCommentNotFound
		}
		return err
	}
	if c.UserID != userID {
		return errNotCommentOwner
	}
	return s.db.Delete(&models.CommentModel{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cg := rg.Group("/comments")

	cg.GET("", h.list)
	cg.POST("", authMW, h.create)
	cg.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	projectID := strings.TrimSpace(c.Query("project_id"))
	if projectID == "" {
		response.BadRequest(c, "project_id is required")
		return
	}

	comments, err := h.svc.List(projectID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, comments)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, created)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Param("id"), middleware.CurrentUserID(c))
	switch {
	case err == nil:
		response.NoContent(c)
	case errors.Is(err, errCommentNotFound):
		response.NotFoundMsg(c, "Comment not found")
	case errors.Is(err, errNotCommentOwner):
		response.ForbiddenMsg(c, "You can only delete your own comments")
	default:
		response.InternalError(c, err)
	}
}
