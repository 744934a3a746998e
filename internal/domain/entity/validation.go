package entity

import (
	"errors"
	"strings"
)

// requiredField pairs a display name with an accessor for one mandatory article field.
// The slice order is the order in which missing fields are reported.
type requiredField struct {
	name  string
	json  string
	value func(Article) *string
}

var requiredFields = []requiredField{
	{name: "Title", json: "title", value: func(a Article) *string { return a.Title }},
	{name: "Description", json: "description", value: func(a Article) *string { return a.Description }},
	{name: "Published At", json: "publishedAt", value: func(a Article) *string { return a.PublishedAt }},
	{name: "URL", json: "url", value: func(a Article) *string { return a.URL }},
}

// IsValid reports whether the article carries a title, description, published date and URL.
// Only absence counts as missing: an empty string is a present value.
func (a Article) IsValid() bool {
	for _, f := range requiredFields {
		if f.value(a) == nil {
			return false
		}
	}
	return true
}

// InvalidFieldNames lists the display names of the missing required fields,
// in the order Title, Description, Published At, URL, each followed by a space.
// It returns "" when the article is valid.
func (a Article) InvalidFieldNames() string {
	var b strings.Builder
	for _, f := range requiredFields {
		if f.value(a) == nil {
			b.WriteString(f.name)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Validate returns nil for a valid article, otherwise one ValidationError per
// missing field joined together. The result matches ErrValidationFailed.
func (a Article) Validate() error {
	var errs []error
	for _, f := range requiredFields {
		if f.value(a) == nil {
			errs = append(errs, &ValidationError{Field: f.json, Message: f.name + " is required"})
		}
	}
	return errors.Join(errs...)
}

// IsValid is the function form of Article.IsValid.
func IsValid(a Article) bool {
	return a.IsValid()
}

// InvalidFieldNames is the function form of Article.InvalidFieldNames.
func InvalidFieldNames(a Article) string {
	return a.InvalidFieldNames()
}
