package project

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
	"github.com/engisim/core/internal/pkg/pagination"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	p := rg.Group("/projects")

	p.GET("", h.list)
	p.POST("", authMW, h.create)
	p.GET("/mine", authMW, h.listMine)
	p.GET("/:id", h.get)
	p.PATCH("/:id", authMW, h.update)
	p.DELETE("/:id", authMW, h.delete)
	p.POST("/:id/download", authMW, h.download)

	rg.GET("/software", h.listSoftware)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	// "limit" is the landing-page shorthand for size.
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		q.Size = limit
		if q.Size > pagination.MaxSize {
			q.Size = pagination.MaxSize
		}
	}
	projects, pag, err := h.svc.List(q, strings.TrimSpace(c.Query("software")))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, projects, pag)
}

func (h *Handler) listMine(c *gin.Context) {
	projects, err := h.svc.ListByAuthor(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, projects)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, errProjectNotFound) {
			response.NotFoundMsg(c, "Project not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, p)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, errTitleTooLong) {
			response.BadRequest(c, fmt.Sprintf("Title must be %d characters or fewer", models.TitleMaxLength))
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.svc.Update(c.Param("id"), middleware.CurrentUserID(c), &dto)
	if err != nil {
		h.writeProjectError(c, err)
		return
	}
	response.OK(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		h.writeProjectError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) download(c *gin.Context) {
	p, err := h.svc.RegisterDownload(c.Param("id"))
	if err != nil {
		h.writeProjectError(c, err)
		return
	}
	response.OK(c, gin.H{
		"file_url":  p.FileURL,
		"downloads": p.Downloads,
	})
}

func (h *Handler) listSoftware(c *gin.Context) {
	response.OK(c, SoftwareCatalog)
}

func (h *Handler) writeProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errProjectNotFound):
		response.NotFoundMsg(c, "Project not found")
	case errors.Is(err, errNotProjectOwner):
		response.ForbiddenMsg(c, "You do not own this project")
	case errors.Is(err, errTitleTooLong):
		response.BadRequest(c, fmt.Sprintf("Title must be %d characters or fewer", models.TitleMaxLength))
	default:
		response.InternalError(c, err)
	}
}
