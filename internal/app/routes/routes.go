package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tnqdo/tnqdo-backend/internal/app/controllers"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	blogController *controllers.BlogController,
	teacherController *controllers.TeacherController,
	faqController *controllers.FAQController,
	contactController *controllers.ContactController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "ok"}))
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/featured", courseController.GetFeaturedCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	blog := v1.Group("/blog")
	{
		blog.GET("", blogController.GetPublishedPosts)
		blog.GET("/search", blogController.SearchPosts)
		blog.GET("/featured", blogController.GetFeaturedPosts)
		blog.GET("/recent", blogController.GetRecentPosts)
		blog.GET("/categories", blogController.GetCategories)
		blog.GET("/:slug", blogController.ReadPostBySlug)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/featured", teacherController.GetFeaturedTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
	}

	v1.GET("/faqs", faqController.GetFAQs)
	v1.POST("/contact", contactController.SubmitMessage)

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		adminCourses := admin.Group("/courses")
		{
			adminCourses.POST("", courseController.CreateCourse)
			adminCourses.PUT("/:id", courseController.UpdateCourse)
			adminCourses.DELETE("/:id", courseController.DeleteCourse)
			adminCourses.GET("/export", courseController.ExportCourses)
			adminCourses.POST("/import", courseController.ImportCourses)
		}

		adminBlog := admin.Group("/blog")
		{
			adminBlog.GET("", blogController.GetAllPosts)
			adminBlog.POST("", blogController.CreatePost)
			adminBlog.GET("/:id", blogController.GetPostByID)
			adminBlog.PUT("/:id", blogController.UpdatePost)
			adminBlog.DELETE("/:id", blogController.DeletePost)
		}

		adminContact := admin.Group("/contact")
		{
			adminContact.GET("", contactController.GetAllMessages)
			adminContact.PUT("/:id/status", contactController.UpdateMessageStatus)
		}

		admin.GET("/stats", statsController.GetStats)
	}
}
