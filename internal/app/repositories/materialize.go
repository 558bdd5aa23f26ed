package repositories

import (
	"time"

	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/slug"
)

// Defaults applied when a create request omits a field.
const (
	defaultCourseImage  = "https://images.unsplash.com/photo-1516979187457-637abb4f9353?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80"
	defaultBlogImage    = "https://images.unsplash.com/photo-1499750310107-5fef28a66643?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
	defaultBlogCategory = "Học tiếng Nhật"
	defaultAuthorName   = "TNQDO"
)

func defaultSyllabus() []models.SyllabusWeek {
	return []models.SyllabusWeek{
		{
			Week:  1,
			Topic: "Giới thiệu khóa học",
			Content: []string{
				"Tổng quan chương trình",
				"Mục tiêu học tập",
				"Phương pháp học",
			},
		},
	}
}

func defaultRequirements() []string {
	return []string{
		"Có đam mê học tiếng Nhật",
		"Cam kết học tập nghiêm túc",
	}
}

func defaultOutcomes() []string {
	return []string{
		"Nắm vững kiến thức cấp độ",
		"Có thể giao tiếp cơ bản",
	}
}

// materializeCourse turns a create request into a full record, filling
// every omitted field with its documented default.
func materializeCourse(patch models.CoursePatch, id string, now time.Time) models.CourseDetail {
	course := models.CourseDetail{
		Course: models.Course{
			ID:        id,
			Level:     models.LevelN5,
			Image:     defaultCourseImage,
			Features:  []string{},
			IsActive:  true,
			CreatedAt: now.UTC(),
		},
		Syllabus:     defaultSyllabus(),
		Requirements: defaultRequirements(),
		Outcomes:     defaultOutcomes(),
	}
	applyCoursePatch(&course, patch)
	return course
}

// applyCoursePatch copies the set fields of patch onto course. ID and
// CreatedAt are never touched, which is what makes updates unable to
// reassign identity.
func applyCoursePatch(course *models.CourseDetail, patch models.CoursePatch) {
	if patch.Name != nil {
		course.Name = *patch.Name
	}
	if patch.Level != nil {
		course.Level = *patch.Level
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Duration != nil {
		course.Duration = *patch.Duration
	}
	if patch.Price != nil {
		course.Price = *patch.Price
	}
	if patch.Image != nil {
		course.Image = *patch.Image
	}
	if patch.Features != nil {
		course.Features = *patch.Features
	}
	if patch.IsActive != nil {
		course.IsActive = *patch.IsActive
	}
	if patch.Syllabus != nil {
		course.Syllabus = *patch.Syllabus
	}
	if patch.Requirements != nil {
		course.Requirements = *patch.Requirements
	}
	if patch.Outcomes != nil {
		course.Outcomes = *patch.Outcomes
	}
}

// materializePost turns a create request into a full post. The slug is
// derived from the title unless the request carries its own.
func materializePost(patch models.BlogPatch, id string, now time.Time) models.BlogPost {
	post := models.BlogPost{
		ID:          id,
		Image:       defaultBlogImage,
		Category:    defaultBlogCategory,
		Tags:        []string{},
		Author:      models.Author{Name: defaultAuthorName},
		PublishedAt: now.UTC(),
		UpdatedAt:   now.UTC(),
		IsPublished: true,
	}
	applyBlogPatch(&post, patch, now)
	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}
	return post
}

// applyBlogPatch copies the set fields of patch onto post and stamps
// UpdatedAt. ID and Views are never touched here; views only move
// through IncrementViews.
func applyBlogPatch(post *models.BlogPost, patch models.BlogPatch, now time.Time) {
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Slug != nil {
		post.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Image != nil {
		post.Image = *patch.Image
	}
	if patch.Category != nil {
		post.Category = *patch.Category
	}
	if patch.Tags != nil {
		post.Tags = *patch.Tags
	}
	if patch.Author != nil {
		post.Author = *patch.Author
	}
	if patch.PublishedAt != nil {
		post.PublishedAt = patch.PublishedAt.UTC()
	}
	if patch.IsPublished != nil {
		post.IsPublished = *patch.IsPublished
	}
	post.UpdatedAt = now.UTC()
}
