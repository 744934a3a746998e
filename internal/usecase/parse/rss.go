package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"articles-parser/internal/domain/entity"
)

// decodeRSS parses an RSS/Atom/JSON feed and maps each item onto an Article.
// Feeds have no null, so empty item fields are mapped to absent fields.
func decodeRSS(text string) ([]entity.Article, error) {
	feed, err := gofeed.NewParser().ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: feed: %v", ErrDecodeFailed, err)
	}

	source := entity.Source{Name: optional(feed.Title)}
	if feed.Link != "" {
		source.ID = optional(feed.Link)
	}

	articles := make([]entity.Article, 0, len(feed.Items))
	for _, it := range feed.Items {
		articles = append(articles, entity.Article{
			Source:      source,
			Author:      optional(itemAuthor(it)),
			Title:       optional(strings.TrimSpace(it.Title)),
			Description: optional(stripHTML(it.Description)),
			URL:         optional(strings.TrimSpace(it.Link)),
			URLToImage:  optional(itemImage(it)),
			PublishedAt: optional(itemPublished(it)),
			Content:     optional(stripHTML(it.Content)),
		})
	}
	return articles, nil
}

func itemAuthor(it *gofeed.Item) string {
	if it.Author != nil && it.Author.Name != "" {
		return it.Author.Name
	}
	for _, p := range it.Authors {
		if p != nil && p.Name != "" {
			return p.Name
		}
	}
	return ""
}

func itemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// itemPublished prefers the parsed publish date, falling back to the raw
// string and then to the update date (Atom entries often carry only that).
func itemPublished(it *gofeed.Item) string {
	if it.PublishedParsed != nil {
		return it.PublishedParsed.UTC().Format(time.RFC3339)
	}
	if it.Published != "" {
		return it.Published
	}
	if it.UpdatedParsed != nil {
		return it.UpdatedParsed.UTC().Format(time.RFC3339)
	}
	return it.Updated
}

// stripHTML reduces an HTML fragment to its whitespace-normalised text.
func stripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
