package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/app/services"
	"github.com/tnqdo/tnqdo-backend/internal/middleware"
)

// TeacherController handles teacher profile pages
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// GetAllTeachers handles the teacher listing page
// @Summary Get all teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(teachers))
}

// GetFeaturedTeachers handles the homepage teacher strip
// @Summary Get featured teachers
// @Tags teachers
// @Produce json
// @Param limit query int false "Number of teachers" default(3)
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers/featured [get]
func (c *TeacherController) GetFeaturedTeachers(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	teachers, err := c.teacherService.GetFeaturedTeachers(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(teachers))
}

// GetTeacherByID handles the teacher detail page
// @Summary Get teacher by id
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.TeacherDetail}
// @Failure 404 {object} dto.APIResponse
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(teacher))
}
