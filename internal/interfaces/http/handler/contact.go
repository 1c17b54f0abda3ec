package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcontact "github.com/helenrojas261991-debug/home-services-florida/internal/application/contact"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/middleware"
)

// ContactHandler accepts public contact-form submissions and serves
// the admin inbox.
type ContactHandler struct {
	BaseHandler
	contact        *appcontact.Service
	authMiddleware gin.HandlerFunc
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *appcontact.Service, authMiddleware gin.HandlerFunc) *ContactHandler {
	return &ContactHandler{
		contact:        contactService,
		authMiddleware: authMiddleware,
	}
}

// SubmitContactRequest is the public contact-form body
type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// UpdateStatusRequest moves a submission to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read responded"`
}

// Submit stores a new contact-form submission
func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	submission, err := h.contact.Submit(c.Request.Context(), appcontact.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, submission)
}

// List returns recent submissions, newest first
func (h *ContactHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	submissions, err := h.contact.List(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, submissions)
}

// UpdateStatus moves a submission to a new status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.BadRequest(c, "Invalid submission ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.contact.UpdateStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"id": id, "status": req.Status})
}

// RegisterRoutes registers the public form route and admin inbox routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)

	admin := rg.Group("/admin", h.authMiddleware)
	admin.GET("/contact", h.List)
	admin.PUT("/contact/:id/status", h.UpdateStatus)
}
