package domain

import "time"

// Article is one unit of migrated content read from the Liferay journal
// tables. Among all revisions sharing an ArticleID, the extraction layer
// yields exactly one (the latest version, optionally approved-only).
type Article struct {
	ID              int64
	ArticleID       string // stable external identifier, shared across versions
	Version         int
	Title           string
	ContentXML      string
	URLTitle        *string
	Description     *string
	ResourcePrimKey int64
	UserID          int64
	FolderID        *int64
	StructureID     *string
	TemplateID      *string
	Categories      []string
	Tags            []string
	CreateDate      time.Time
	ModifiedDate    time.Time
}

// Folder is a node of the journal folder forest. ParentFolderID 0 means root.
type Folder struct {
	FolderID       int64
	Name           string
	ParentFolderID int64
}

// User is the author identity behind an article.
type User struct {
	ScreenName   string
	EmailAddress string
	FullName     string
}

// Template is a Liferay DDM template. Only its identity and name are
// consumed here; the script belongs to the template converter tooling.
type Template struct {
	TemplateID string
	Name       string
	Script     string
	Language   string // "ftl" or "vm"
}
