package file

import (
	"io"

	"github.com/engisim/core/internal/modules/storage"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler accepts multipart uploads and serves locally stored assets.
type Handler struct {
	store storage.Store
}

func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer src.Close()

	payload, err := io.ReadAll(src)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	name := buildFileName(fileHeader.Filename)
	contentType := detectContentType(fileHeader.Filename, payload, fileHeader.Header.Get("Content-Type"))

	// Bucket backends group images and archives under separate prefixes.
	// The local store flattens the key to a bare filename.
	fileURL, err := h.store.Put(c.Request.Context(), objectKey(name, contentType), payload, contentType)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"url":  fileURL,
		"name": name,
	})
}
