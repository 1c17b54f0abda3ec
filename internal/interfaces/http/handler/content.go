package handler

import (
	"github.com/gin-gonic/gin"

	appcontent "github.com/helenrojas261991-debug/home-services-florida/internal/application/content"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/middleware"
)

// ContentHandler serves editable site content publicly and accepts
// admin writes.
type ContentHandler struct {
	BaseHandler
	content        *appcontent.Service
	authMiddleware gin.HandlerFunc
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *appcontent.Service, authMiddleware gin.HandlerFunc) *ContentHandler {
	return &ContentHandler{
		content:        contentService,
		authMiddleware: authMiddleware,
	}
}

// ContentKeyURI binds the :key path parameter
type ContentKeyURI struct {
	Key string `uri:"key" binding:"required"`
}

// UpsertContentRequest is a partial content write. Omitted fields keep
// their stored values.
type UpsertContentRequest struct {
	Key           string         `json:"key" binding:"required"`
	TitleEn       *string        `json:"titleEn"`
	TitleEs       *string        `json:"titleEs"`
	DescriptionEn *string        `json:"descriptionEn"`
	DescriptionEs *string        `json:"descriptionEs"`
	ImageURL      *string        `json:"imageUrl"`
	VideoURL      *string        `json:"videoUrl"`
	Metadata      map[string]any `json:"metadata"`
}

// Get returns one content block by key
func (h *ContentHandler) Get(c *gin.Context) {
	var uri ContentKeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entry, err := h.content.Get(c.Request.Context(), uri.Key)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// All returns every content block
func (h *ContentHandler) All(c *gin.Context) {
	entries, err := h.content.All(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// Upsert creates or partially updates a content block
func (h *ContentHandler) Upsert(c *gin.Context) {
	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entry, err := h.content.Upsert(c.Request.Context(), appcontent.UpsertInput{
		Key:           req.Key,
		TitleEn:       req.TitleEn,
		TitleEs:       req.TitleEs,
		DescriptionEn: req.DescriptionEn,
		DescriptionEs: req.DescriptionEs,
		ImageURL:      req.ImageURL,
		VideoURL:      req.VideoURL,
		Metadata:      req.Metadata,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// Delete removes a content block by key
func (h *ContentHandler) Delete(c *gin.Context) {
	var uri ContentKeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.content.Delete(c.Request.Context(), uri.Key); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers public reads and admin writes
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.All)
	rg.GET("/content/:key", h.Get)

	admin := rg.Group("/admin", h.authMiddleware)
	admin.PUT("/content", h.Upsert)
	admin.DELETE("/content/:key", h.Delete)
}
