package auth

import (
	"errors"

	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
	"github.com/engisim/core/internal/pkg/mail"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	mailer *mail.Sender
	logger *zap.Logger
}

func NewHandler(svc *Service, mailer *mail.Sender, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, mailer: mailer, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/register", h.register)
	a.POST("/login", h.login)
	a.POST("/logout", authMW, h.logout)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errUserExists) {
			response.BadRequest(c, "User already exists")
			return
		}
		response.InternalError(c, err)
		return
	}

	h.sendWelcomeMail(u)
	response.Created(c, toAuthUser(u))
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, u, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			response.ForbiddenMsg(c, "No account found with this email")
			return
		}
		if errors.Is(err, errWrongPassword) {
			response.ForbiddenMsg(c, "Incorrect password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, loginResponse{Token: token, User: toAuthUser(u)})
}

func (h *Handler) logout(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.svc.Logout(userID, middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}

func (h *Handler) sendWelcomeMail(u *models.UserModel) {
	if h.mailer == nil {
		return
	}
	go func(email, name string) {
		if err := h.mailer.Send(mail.WelcomeMessage(email, name)); err != nil {
			h.logger.Warn("welcome mail failed", zap.String("email", email), zap.Error(err))
		}
	}(u.Email, u.Name)
}

func toAuthUser(u *models.UserModel) authUser {
	return authUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Created:   u.CreatedAt,
	}
}
