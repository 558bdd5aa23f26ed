package events

// Topic names published by the write side. The exact spellings are
// shared with frontend consumers and must not change.
const (
	TopicCoursesUpdated = "courses:updated"
	TopicCourseCreated  = "course:created"
	TopicCourseUpdated  = "course:updated"
	TopicCourseDeleted  = "course:deleted"
	TopicBlogUpdated    = "blog:updated"
	TopicBlogCreated    = "blog:created"
	TopicBlogDeleted    = "blog:deleted"
)
