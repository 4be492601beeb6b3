package rss

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/model"
)

const untitled = "Untitled"

type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
	now     func() time.Time
}

func NewFetcher(cfg *config.Config) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{}
	parser.UserAgent = cfg.Service.Name

	return &Fetcher{
		parser:  parser,
		timeout: cfg.RSS.FetchTimeout,
		now:     time.Now,
	}
}

// Fetch downloads and parses an RSS or Atom document. Items come back newest
// first.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]model.FeedItem, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}

	return f.items(feed), nil
}

func (f *Fetcher) items(feed *gofeed.Feed) []model.FeedItem {
	fallback := f.now().UTC()

	out := make([]model.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = untitled
		}

		published := fallback
		switch {
		case item.PublishedParsed != nil:
			published = item.PublishedParsed.UTC()
		case item.UpdatedParsed != nil:
			published = item.UpdatedParsed.UTC()
		}

		out = append(out, model.FeedItem{
			Title:       title,
			Link:        item.Link,
			Published:   published,
			Content:     item.Content,
			Description: item.Description,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Published.After(out[j].Published)
	})

	return out
}
