package domain

import "time"

// Post is the payload sent to the WordPress REST API. Optional fields are
// pointers or omitempty slices so absent values stay out of the JSON body.
type Post struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        string     `json:"status"`
	Date          *time.Time `json:"date,omitempty"`
	FeaturedMedia *int       `json:"featured_media,omitempty"`
	Slug          string     `json:"slug,omitempty"`
	Author        *int       `json:"author,omitempty"`
	Categories    []int      `json:"categories,omitempty"`
	Tags          []int      `json:"tags,omitempty"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	Parent        *int       `json:"parent,omitempty"`
	Template      string     `json:"template,omitempty"`
}

// PostRef identifies a created post on the destination.
type PostRef struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// MediaRef identifies an uploaded media item on the destination.
type MediaRef struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}
