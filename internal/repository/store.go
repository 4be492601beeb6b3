// Package repository picks the storage backend named by STORE_DRIVER.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/model"
	"github.com/jichangee/ai-chat/internal/repository/memory"
	"github.com/jichangee/ai-chat/internal/repository/postgres"
)

// Store is the full storage surface shared by both backends.
type Store interface {
	InsertMessage(ctx context.Context, msg model.Message) (*model.Message, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, upd model.MessageUpdate) (*model.Message, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	RecentMessages(ctx context.Context, filter model.MessageFilter, limit int) (model.MessageList, error)
	ListMessages(ctx context.Context, limit, offset int) (model.MessageList, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)

	ListBots(ctx context.Context) ([]model.Bot, error)
	ListActiveBots(ctx context.Context) ([]model.Bot, error)
	GetBot(ctx context.Context, id uuid.UUID) (*model.Bot, error)
	CreateBot(ctx context.Context, bot model.Bot) (*model.Bot, error)
	UpdateBot(ctx context.Context, id uuid.UUID, upd model.BotUpdate) (*model.Bot, error)
	DeleteBot(ctx context.Context, id uuid.UUID) error

	ListFeeds(ctx context.Context) ([]model.Feed, error)
	ListActiveFeeds(ctx context.Context) ([]model.Feed, error)
	GetFeed(ctx context.Context, id uuid.UUID) (*model.Feed, error)
	CreateFeed(ctx context.Context, feed model.Feed) (*model.Feed, error)
	UpdateFeed(ctx context.Context, id uuid.UUID, upd model.FeedUpdate) (*model.Feed, error)
	MarkFeedFetched(ctx context.Context, id uuid.UUID, fetchedAt time.Time, lastItemDate *time.Time) error
	DeleteFeed(ctx context.Context, id uuid.UUID) error

	GetNotificationRule(ctx context.Context) (*model.NotificationRule, error)
	SaveNotificationRule(ctx context.Context, rule model.NotificationRule) (*model.NotificationRule, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
	Ping(ctx context.Context) error
	Close()
}

var (
	_ Store = (*postgres.Repository)(nil)
	_ Store = (*memory.Store)(nil)
)

// Open connects the configured backend. PostgreSQL gets the embedded schema
// applied when POSTGRES_AUTO_MIGRATE is on.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return memory.New(), nil
	}

	repo := postgres.New(cfg)
	if cfg.Postgres.AutoMigrate {
		if err := repo.Migrate(ctx); err != nil {
			repo.Close()
			return nil, err
		}
	}

	return repo, nil
}
