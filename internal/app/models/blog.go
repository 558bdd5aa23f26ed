package models

import "time"

// Author identifies the writer of a blog post.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// BlogPost represents a published or draft article.
type BlogPost struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Excerpt     string    `json:"excerpt" db:"excerpt"`
	Content     string    `json:"content" db:"content"` // HTML body
	Image       string    `json:"image" db:"image"`
	Category    string    `json:"category" db:"category"`
	Tags        []string  `json:"tags" db:"tags"`
	Author      Author    `json:"author"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	Views       int64     `json:"views" db:"views"`
}

// BlogPatch enumerates the caller-settable blog post fields. Views are
// excluded: they only change through the view counter.
type BlogPatch struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	Image       *string    `json:"image"`
	Category    *string    `json:"category"`
	Tags        *[]string  `json:"tags"`
	Author      *Author    `json:"author"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsPublished *bool      `json:"isPublished"`
}
