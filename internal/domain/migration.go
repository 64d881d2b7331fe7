package domain

import "time"

// MigrationEvent announces one migrated article to downstream consumers.
type MigrationEvent struct {
	Action     string    `json:"action"`
	ArticleID  string    `json:"article_id"`
	Slug       string    `json:"slug"`
	PostID     int       `json:"post_id"`
	Collection string    `json:"collection"`
	Timestamp  time.Time `json:"timestamp"`
}

// MigrationStats holds statistics about one migration run.
type MigrationStats struct {
	Processed     int
	Migrated      int
	Skipped       int
	Errors        int
	MediaUploaded int
	Published     int
	Duration      time.Duration
}
