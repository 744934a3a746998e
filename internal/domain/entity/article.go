// Package entity defines the core domain records and validation logic for the parser.
// It contains the Article and Source value objects decoded from news feeds, the
// transient NewsEnvelope wrapper, and the rules that decide whether an article is usable.
package entity

import "strings"

// Article represents a single news article as decoded from a feed.
// Every string field is optional: a nil pointer means the field was absent or null
// in the input, while a pointer to "" means it was present but empty.
// An Article may exist in an invalid state; validity is checked separately.
type Article struct {
	Source      Source  `json:"source"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt *string `json:"publishedAt"`
	Content     *string `json:"content"`
}

// NewsEnvelope is the NewsAPI response wrapper around a list of articles.
// It only exists while decoding and is never handed out by the parser.
type NewsEnvelope struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Equal reports whether two articles hold the same value in all eight fields.
func (a Article) Equal(other Article) bool {
	return a.Source.Equal(other.Source) &&
		optEqual(a.Author, other.Author) &&
		optEqual(a.Title, other.Title) &&
		optEqual(a.Description, other.Description) &&
		optEqual(a.URL, other.URL) &&
		optEqual(a.URLToImage, other.URLToImage) &&
		optEqual(a.PublishedAt, other.PublishedAt) &&
		optEqual(a.Content, other.Content)
}

// String returns the human-readable form printed by the driver:
// title, description, published date and URL, one per line.
func (a Article) String() string {
	var b strings.Builder
	b.WriteString("Title: " + optString(a.Title) + "\n")
	b.WriteString("Description: " + optString(a.Description) + "\n")
	b.WriteString("Published At: " + optString(a.PublishedAt) + "\n")
	b.WriteString("URL: " + optString(a.URL) + "\n")
	return b.String()
}

// StringPtr returns a pointer to s. It is a convenience for building optional fields.
func StringPtr(s string) *string {
	return &s
}

// optEqual compares two optional strings by value.
func optEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func optString(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
