// Package rss posts new feed items into the chat log.
package rss

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/metrics"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
)

type Mode string

const (
	// ModeScheduled posts every new item.
	ModeScheduled Mode = "scheduled"
	// ModeManual posts only the newest new item.
	ModeManual Mode = "manual"
)

var ErrNoItems = errors.New("feed has no items")

type FeedResult struct {
	Feed           string `json:"feed"`
	NewItems       int    `json:"newItems"`
	TotalAvailable int    `json:"totalAvailable,omitempty"`
	Error          string `json:"error,omitempty"`
}

type Summary struct {
	NewItems int          `json:"newItems"`
	Results  []FeedResult `json:"results"`
}

type Preview struct {
	Content  string         `json:"content"`
	Metadata model.Metadata `json:"metadata"`
}

type Poller struct {
	store    Store
	source   Source
	notifier Notifier
	metrics  *metrics.Metrics

	initial int
	now     func() time.Time
}

func NewPoller(store Store, source Source, notifier Notifier, cfg *config.Config, m *metrics.Metrics) *Poller {
	return &Poller{
		store:    store,
		source:   source,
		notifier: notifier,
		metrics:  m,
		initial:  cfg.RSS.InitialItems,
		now:      time.Now,
	}
}

// PollAll checks every active feed. A failing feed is reported in its
// result and does not stop the others.
func (p *Poller) PollAll(ctx context.Context, mode Mode) (*Summary, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("PollAll")

	feeds, err := p.store.ListActiveFeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}

	summary := &Summary{Results: []FeedResult{}}
	for _, feed := range feeds {
		res, err := p.poll(ctx, feed, mode)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to poll feed %s (%s): %v", feed.Name, feed.ID, err))
			summary.Results = append(summary.Results, FeedResult{Feed: feed.Name, Error: err.Error()})
			continue
		}
		if res.NewItems > 0 {
			summary.Results = append(summary.Results, res)
			summary.NewItems += res.NewItems
		}
	}

	logger.Info(fmt.Sprintf("%s poll posted %d items from %d feeds", mode, summary.NewItems, len(feeds)))
	return summary, nil
}

func (p *Poller) poll(ctx context.Context, feed model.Feed, mode Mode) (FeedResult, error) {
	res := FeedResult{Feed: feed.Name}

	items, err := p.source.Fetch(ctx, feed.URL)
	if err != nil {
		return res, err
	}

	fresh := NewItems(items, feed.LastItemDate, p.initial)
	post := fresh
	if mode == ModeManual && len(fresh) > 1 {
		post = fresh[:1]
		res.TotalAvailable = len(fresh)
	}

	for _, item := range post {
		msg, err := p.store.InsertMessage(ctx, RSSMessage(feed, item))
		if err != nil {
			return res, fmt.Errorf("failed to save item %q: %w", item.Title, err)
		}
		p.notifier.NotifyIfMatch(ctx, *msg)
		res.NewItems++
	}
	p.metrics.RSSItems(res.NewItems)

	if err := p.store.MarkFeedFetched(ctx, feed.ID, p.now().UTC(), newest(post)); err != nil {
		return res, fmt.Errorf("failed to mark feed fetched: %w", err)
	}

	return res, nil
}

// Latest renders the newest item of a feed without posting it.
func (p *Poller) Latest(ctx context.Context, feedID uuid.UUID) (*Preview, error) {
	feed, err := p.store.GetFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}

	items, err := p.source.Fetch(ctx, feed.URL)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	md := ItemMetadata(items[0])
	md["feedName"] = feed.Name
	md["feedId"] = feed.ID.String()

	return &Preview{Content: FormatMessage(items[0]), Metadata: md}, nil
}

// RSSMessage is the chat message posted for item.
func RSSMessage(feed model.Feed, item model.FeedItem) model.Message {
	feedID := feed.ID
	return model.Message{
		Content:    FormatMessage(item),
		SenderType: model.SenderRSS,
		SenderID:   &feedID,
		SenderName: feed.Name,
		Metadata:   ItemMetadata(item),
	}
}
