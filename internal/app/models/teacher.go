package models

import "time"

// Teacher represents an instructor profile as shown on listing pages.
type Teacher struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Title           string    `json:"title" db:"title"`
	Avatar          string    `json:"avatar" db:"avatar"`
	Bio             string    `json:"bio" db:"bio"`
	Specializations []string  `json:"specializations" db:"specializations"`
	Experience      string    `json:"experience" db:"experience"`
	Education       []string  `json:"education" db:"education"`
	Certifications  []string  `json:"certifications" db:"certifications"`
	TeachingStyle   string    `json:"teachingStyle" db:"teaching_style"`
	CoursesCount    int       `json:"coursesCount" db:"courses_count"`
	StudentsCount   int       `json:"studentsCount" db:"students_count"`
	Rating          float64   `json:"rating" db:"rating"`
	IsActive        bool      `json:"isActive" db:"is_active"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// SocialLinks holds a teacher's public profiles.
type SocialLinks struct {
	Facebook string `json:"facebook,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	YouTube  string `json:"youtube,omitempty"`
}

// Testimonial is one student review displayed on a teacher detail page.
type Testimonial struct {
	StudentName string `json:"studentName"`
	Comment     string `json:"comment"`
	Rating      int    `json:"rating"`
	Date        string `json:"date"`
}

// TeacherDetail is the full teacher profile.
type TeacherDetail struct {
	Teacher
	SocialLinks     SocialLinks   `json:"socialLinks"`
	Achievements    []string      `json:"achievements"`
	CoursesTeaching []string      `json:"coursesTeaching"`
	Testimonials    []Testimonial `json:"testimonials"`
}
