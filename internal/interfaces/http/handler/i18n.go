package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/helenrojas261991-debug/home-services-florida/internal/i18n"
)

// I18nHandler serves the static translation tables
type I18nHandler struct {
	BaseHandler
}

// NewI18nHandler creates a new i18n handler
func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// TranslationsResponse is one language's full string table
type TranslationsResponse struct {
	Language     string            `json:"language"`
	Translations map[string]string `json:"translations"`
}

// Get returns the table for an explicit language code. Unknown codes
// fall back to English.
func (h *I18nHandler) Get(c *gin.Context) {
	lang := i18n.Parse(c.Param("lang"))
	h.respond(c, lang)
}

// Negotiate picks the language from the Accept-Language header
func (h *I18nHandler) Negotiate(c *gin.Context) {
	lang := i18n.Negotiate(c.GetHeader("Accept-Language"))
	h.respond(c, lang)
}

func (h *I18nHandler) respond(c *gin.Context, lang i18n.Language) {
	h.Success(c, TranslationsResponse{
		Language:     string(lang),
		Translations: i18n.Translations(lang),
	})
}

// RegisterRoutes registers public i18n routes
func (h *I18nHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/i18n", h.Negotiate)
	rg.GET("/i18n/:lang", h.Get)
}
