package dto

// SnapshotResponse carries an exported collection as pretty JSON text.
type SnapshotResponse struct {
	Snapshot string `json:"snapshot"`
}

// ImportRequest carries a snapshot to restore.
type ImportRequest struct {
	Snapshot string `json:"snapshot" binding:"required"`
}

// StatsResponse summarizes the catalog for the admin dashboard.
type StatsResponse struct {
	Courses         int   `json:"courses"`
	ActiveCourses   int   `json:"activeCourses"`
	Posts           int   `json:"posts"`
	PublishedPosts  int   `json:"publishedPosts"`
	TotalViews      int64 `json:"totalViews"`
	Teachers        int   `json:"teachers"`
	PendingMessages int   `json:"pendingMessages"`
}
