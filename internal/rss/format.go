package rss

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/jichangee/ai-chat/internal/model"
)

const (
	MetaTitle   = "title"
	MetaLink    = "link"
	MetaPubDate = "pubDate"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// NewItems picks the items to post. A feed that was never posted from yields
// its newest initial items; otherwise only items newer than lastItemDate.
// items must be newest first.
func NewItems(items []model.FeedItem, lastItemDate *time.Time, initial int) []model.FeedItem {
	if lastItemDate == nil {
		if initial > 0 && len(items) > initial {
			return items[:initial]
		}
		return items
	}

	out := make([]model.FeedItem, 0, len(items))
	for _, item := range items {
		if item.Published.After(*lastItemDate) {
			out = append(out, item)
		}
	}
	return out
}

// FormatMessage renders an item as chat text.
func FormatMessage(item model.FeedItem) string {
	description := item.Description
	if strings.TrimSpace(description) == "" {
		description = item.Content
	}

	return fmt.Sprintf("📰 %s\n\n%s\n\n🔗 %s", item.Title, StripHTML(description), item.Link)
}

// StripHTML drops tags and decodes entities.
func StripHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(s)
}

func ItemMetadata(item model.FeedItem) model.Metadata {
	return model.Metadata{
		MetaTitle:   item.Title,
		MetaLink:    item.Link,
		MetaPubDate: item.Published.Format(time.RFC3339),
	}
}

func newest(items []model.FeedItem) *time.Time {
	if len(items) == 0 {
		return nil
	}
	latest := items[0].Published
	for _, item := range items[1:] {
		if item.Published.After(latest) {
			latest = item.Published
		}
	}
	return &latest
}
