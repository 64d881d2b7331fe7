package domain

import (
	"encoding/json"
	"strings"
)

// MigrationState is the persisted checkpoint: the set of completed article
// IDs and the slug → WordPress post ID map built up across records. Both
// parts are append-only within a run. Completed IDs are matched
// case-insensitively, as are slugs.
type MigrationState struct {
	completed  map[string]struct{}
	SlugToPost map[string]int
}

// NewMigrationState returns an empty checkpoint.
func NewMigrationState() *MigrationState {
	return &MigrationState{
		completed:  make(map[string]struct{}),
		SlugToPost: make(map[string]int),
	}
}

// IsCompleted reports whether the article was already migrated.
func (s *MigrationState) IsCompleted(articleID string) bool {
	_, ok := s.completed[strings.ToLower(articleID)]
	return ok
}

// MarkCompleted records the article as migrated.
func (s *MigrationState) MarkCompleted(articleID string) {
	s.completed[strings.ToLower(articleID)] = struct{}{}
}

// RecordSlug maps a created slug to its WordPress post ID so that later
// records can resolve it as a parent.
func (s *MigrationState) RecordSlug(slug string, postID int) {
	s.SlugToPost[strings.ToLower(slug)] = postID
}

// PostIDBySlug resolves a previously created slug.
func (s *MigrationState) PostIDBySlug(slug string) (int, bool) {
	id, ok := s.SlugToPost[strings.ToLower(slug)]
	return id, ok
}

// CompletedCount returns the size of the completed set.
func (s *MigrationState) CompletedCount() int {
	return len(s.completed)
}

type stateJSON struct {
	CompletedArticleIDs []string       `json:"completed_article_ids"`
	CreatedSlugToPostID map[string]int `json:"created_slug_to_post_id"`
}

// MarshalJSON serialises the checkpoint as a flat JSON document: an ID
// array plus a slug map, matching the on-disk checkpoint format.
func (s *MigrationState) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		CompletedArticleIDs: make([]string, 0, len(s.completed)),
		CreatedSlugToPostID: s.SlugToPost,
	}
	for id := range s.completed {
		out.CompletedArticleIDs = append(out.CompletedArticleIDs, id)
	}
	return json.Marshal(out)
}

func (s *MigrationState) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.completed = make(map[string]struct{}, len(in.CompletedArticleIDs))
	for _, id := range in.CompletedArticleIDs {
		s.completed[strings.ToLower(id)] = struct{}{}
	}
	s.SlugToPost = make(map[string]int, len(in.CreatedSlugToPostID))
	for slug, id := range in.CreatedSlugToPostID {
		s.SlugToPost[strings.ToLower(slug)] = id
	}
	return nil
}
