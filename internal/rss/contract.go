//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rss

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/model"
)

type Store interface {
	ListActiveFeeds(ctx context.Context) ([]model.Feed, error)
	GetFeed(ctx context.Context, id uuid.UUID) (*model.Feed, error)
	InsertMessage(ctx context.Context, msg model.Message) (*model.Message, error)
	MarkFeedFetched(ctx context.Context, id uuid.UUID, fetchedAt time.Time, lastItemDate *time.Time) error
}

type Source interface {
	Fetch(ctx context.Context, url string) ([]model.FeedItem, error)
}

type Notifier interface {
	NotifyIfMatch(ctx context.Context, msg model.Message)
}
