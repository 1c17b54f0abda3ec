package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/helenrojas261991-debug/home-services-florida/internal/application/media"
)

// MediaHandler accepts admin image and video uploads
type MediaHandler struct {
	BaseHandler
	media          *media.Service
	authMiddleware gin.HandlerFunc
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService *media.Service, authMiddleware gin.HandlerFunc) *MediaHandler {
	return &MediaHandler{
		media:          mediaService,
		authMiddleware: authMiddleware,
	}
}

// UploadImage stores an image and optionally attaches it to a content
// block named by the contentKey form field
func (h *MediaHandler) UploadImage(c *gin.Context) {
	input, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.media.UploadImage(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UploadVideo stores a video and optionally attaches it to a content block
func (h *MediaHandler) UploadVideo(c *gin.Context) {
	input, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.media.UploadVideo(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *MediaHandler) readUpload(c *gin.Context) (media.UploadInput, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file upload")
		return media.UploadInput{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read file upload")
		return media.UploadInput{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Could not read file upload")
		return media.UploadInput{}, false
	}

	return media.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		ContentKey:  c.PostForm("contentKey"),
	}, true
}

// RegisterRoutes registers admin media upload routes
func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", h.authMiddleware)
	admin.POST("/media/images", h.UploadImage)
	admin.POST("/media/videos", h.UploadVideo)
}
