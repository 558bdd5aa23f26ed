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

// BlogController handles blog related operations
type BlogController struct {
	blogService services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// GetPublishedPosts handles the public blog listing
// @Summary Get published posts
// @Tags blog
// @Produce json
// @Param category query string false "Exact category filter"
// @Success 200 {object} dto.APIResponse{data=[]models.BlogPost}
// @Router /blog [get]
func (c *BlogController) GetPublishedPosts(ctx *gin.Context) {
	var (
		posts []models.BlogPost
		err   error
	)
	if category := ctx.Query("category"); category != "" {
		posts, err = c.blogService.GetPostsByCategory(ctx.Request.Context(), category)
	} else {
		posts, err = c.blogService.GetPublishedPosts(ctx.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// SearchPosts handles keyword blog search
// @Summary Search posts
// @Tags blog
// @Produce json
// @Param q query string false "Keyword matched against title, excerpt, content and tags"
// @Param category query string false "Exact category filter"
// @Success 200 {object} dto.APIResponse{data=[]models.BlogPost}
// @Router /blog/search [get]
func (c *BlogController) SearchPosts(ctx *gin.Context) {
	posts, err := c.blogService.SearchPosts(ctx.Request.Context(), ctx.Query("q"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// GetFeaturedPosts handles the most viewed posts strip
// @Summary Get featured posts
// @Tags blog
// @Produce json
// @Param limit query int false "Number of posts" default(3)
// @Success 200 {object} dto.APIResponse{data=[]models.BlogPost}
// @Router /blog/featured [get]
func (c *BlogController) GetFeaturedPosts(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	posts, err := c.blogService.GetFeaturedPosts(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// GetRecentPosts handles the newest posts strip
// @Summary Get recent posts
// @Tags blog
// @Produce json
// @Param limit query int false "Number of posts" default(3)
// @Success 200 {object} dto.APIResponse{data=[]models.BlogPost}
// @Router /blog/recent [get]
func (c *BlogController) GetRecentPosts(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	posts, err := c.blogService.GetRecentPosts(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// GetCategories handles listing the distinct post categories
// @Summary Get blog categories
// @Tags blog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /blog/categories [get]
func (c *BlogController) GetCategories(ctx *gin.Context) {
	categories, err := c.blogService.GetCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(categories))
}

// ReadPostBySlug handles the public post detail page and counts the view
// @Summary Read post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 404 {object} dto.APIResponse
// @Router /blog/{slug} [get]
func (c *BlogController) ReadPostBySlug(ctx *gin.Context) {
	post, err := c.blogService.ReadPostBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(post))
}

// GetAllPosts handles the admin listing including drafts
// @Summary Get all posts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.BlogPost}
// @Router /admin/blog [get]
func (c *BlogController) GetAllPosts(ctx *gin.Context) {
	posts, err := c.blogService.GetAllPosts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// GetPostByID handles fetching one post for the admin editor
// @Summary Get post by id
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/blog/{id} [get]
func (c *BlogController) GetPostByID(ctx *gin.Context) {
	post, err := c.blogService.GetPostByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(post))
}

// CreatePost handles publishing a new post
// @Summary Create post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.BlogPatch true "Post fields"
// @Success 201 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 401 {object} dto.APIResponse
// @Router /admin/blog [post]
func (c *BlogController) CreatePost(ctx *gin.Context) {
	var patch models.BlogPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	post, err := c.blogService.CreatePost(ctx.Request.Context(), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(post))
}

// UpdatePost handles partial post updates
// @Summary Update post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param post body models.BlogPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/blog/{id} [put]
func (c *BlogController) UpdatePost(ctx *gin.Context) {
	var patch models.BlogPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	post, err := c.blogService.UpdatePost(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(post))
}

// DeletePost handles removing a post
// @Summary Delete post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/blog/{id} [delete]
func (c *BlogController) DeletePost(ctx *gin.Context) {
	if err := c.blogService.DeletePost(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Blog post deleted"}))
}
