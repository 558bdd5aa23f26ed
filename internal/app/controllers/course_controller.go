package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/app/services"
	"github.com/tnqdo/tnqdo-backend/internal/middleware"
)

// CourseController handles course related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses handles retrieving the full course catalog
// @Summary Get all courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseDetail}
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// SearchCourses handles keyword and level filtered course search
// @Summary Search courses
// @Tags courses
// @Produce json
// @Param q query string false "Keyword matched against name and description"
// @Param level query string false "Exact level filter"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseDetail}
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	query := ctx.Query("q")
	level := models.CourseLevel(ctx.Query("level"))
	courses, err := c.courseService.SearchCourses(ctx.Request.Context(), query, level)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// GetFeaturedCourses handles the homepage course strip
// @Summary Get featured courses
// @Tags courses
// @Produce json
// @Param limit query int false "Number of courses" default(3)
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses/featured [get]
func (c *CourseController) GetFeaturedCourses(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	courses, err := c.courseService.GetFeaturedCourses(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// GetCourseByID handles retrieving one course with its syllabus
// @Summary Get course by id
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseDetail}
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// CreateCourse handles adding a course to the catalog
// @Summary Create course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body models.CoursePatch true "Course fields"
// @Success 201 {object} dto.APIResponse{data=models.CourseDetail}
// @Failure 401 {object} dto.APIResponse
// @Router /admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var patch models.CoursePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	course, err := c.courseService.CreateCourse(ctx.Request.Context(), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(course))
}

// UpdateCourse handles partial course updates
// @Summary Update course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param course body models.CoursePatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.CourseDetail}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var patch models.CoursePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// DeleteCourse handles removing a course
// @Summary Delete course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Course deleted"}))
}

// ExportCourses handles downloading the catalog as a snapshot
// @Summary Export course snapshot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SnapshotResponse}
// @Router /admin/courses/export [get]
func (c *CourseController) ExportCourses(ctx *gin.Context) {
	snapshot, err := c.courseService.ExportCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SnapshotResponse{Snapshot: snapshot}))
}

// ImportCourses handles restoring the catalog from a snapshot
// @Summary Import course snapshot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param snapshot body dto.ImportRequest true "Snapshot to restore"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /admin/courses/import [post]
func (c *CourseController) ImportCourses(ctx *gin.Context) {
	var req dto.ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	if err := c.courseService.ImportCourses(ctx.Request.Context(), req.Snapshot); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Courses imported"}))
}
