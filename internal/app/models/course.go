package models

import "time"

// CourseLevel is the JLPT band or specialist track a course belongs to.
type CourseLevel string

const (
	LevelN5           CourseLevel = "N5"
	LevelN4           CourseLevel = "N4"
	LevelN3           CourseLevel = "N3"
	LevelBusiness     CourseLevel = "Business"
	LevelProfessional CourseLevel = "Professional"
)

// Course represents a course as shown on listing pages.
type Course struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Level       CourseLevel `json:"level" db:"level"`
	Description string      `json:"description" db:"description"`
	Duration    string      `json:"duration" db:"duration"`
	Price       int64       `json:"price" db:"price"`
	Image       string      `json:"image" db:"image"`
	Features    []string    `json:"features" db:"features"`
	IsActive    bool        `json:"isActive" db:"is_active"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// SyllabusWeek is one week of a course syllabus.
type SyllabusWeek struct {
	Week    int      `json:"week"`
	Topic   string   `json:"topic"`
	Content []string `json:"content"`
}

// CourseDetail is the full course record including syllabus, stored as
// the canonical representation in both backends.
type CourseDetail struct {
	Course
	Syllabus     []SyllabusWeek `json:"syllabus" db:"syllabus"`
	Requirements []string       `json:"requirements" db:"requirements"`
	Outcomes     []string       `json:"outcomes" db:"outcomes"`
}

// Summary returns the listing-page view of the course.
func (c *CourseDetail) Summary() Course {
	return c.Course
}

// CoursePatch enumerates the caller-settable course fields. Nil fields
// are filled with defaults on create and left untouched on update; id
// and createdAt are never settable through a patch.
type CoursePatch struct {
	Name         *string         `json:"name"`
	Level        *CourseLevel    `json:"level"`
	Description  *string         `json:"description"`
	Duration     *string         `json:"duration"`
	Price        *int64          `json:"price"`
	Image        *string         `json:"image"`
	Features     *[]string       `json:"features"`
	IsActive     *bool           `json:"isActive"`
	Syllabus     *[]SyllabusWeek `json:"syllabus"`
	Requirements *[]string       `json:"requirements"`
	Outcomes     *[]string       `json:"outcomes"`
}
