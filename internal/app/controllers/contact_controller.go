package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/app/services"
	"github.com/tnqdo/tnqdo-backend/internal/middleware"
)

// ContactController handles the contact form and its admin triage
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// SubmitMessage handles a public contact form submission
// @Summary Submit contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.ContactMessage}
// @Failure 400 {object} dto.APIResponse
// @Router /contact [post]
func (c *ContactController) SubmitMessage(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	msg, err := c.contactService.SubmitMessage(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(msg))
}

// GetAllMessages handles the admin inbox, newest first
// @Summary Get contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ContactMessage}
// @Router /admin/contact [get]
func (c *ContactController) GetAllMessages(ctx *gin.Context) {
	messages, err := c.contactService.GetAllMessages(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(messages))
}

// UpdateMessageStatus handles moving a message through the triage states
// @Summary Update contact message status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param status body dto.ContactStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.ContactMessage}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/contact/{id}/status [put]
func (c *ContactController) UpdateMessageStatus(ctx *gin.Context) {
	var req dto.ContactStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	msg, err := c.contactService.UpdateMessageStatus(ctx.Request.Context(), ctx.Param("id"), models.ContactStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(msg))
}
