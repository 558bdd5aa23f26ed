package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/app/services"
	"github.com/tnqdo/tnqdo-backend/internal/middleware"
)

// FAQController handles the FAQ section
type FAQController struct {
	faqService services.FAQService
}

// NewFAQController creates a new FAQController
func NewFAQController(faqService services.FAQService) *FAQController {
	return &FAQController{faqService: faqService}
}

// GetFAQs handles listing FAQs, optionally filtered by category
// @Summary Get FAQs
// @Tags faqs
// @Produce json
// @Param category query string false "Exact category filter"
// @Success 200 {object} dto.APIResponse{data=[]models.FAQ}
// @Router /faqs [get]
func (c *FAQController) GetFAQs(ctx *gin.Context) {
	faqs, err := c.faqService.GetFAQs(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(faqs))
}
