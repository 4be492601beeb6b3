//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/model"
	"github.com/jichangee/ai-chat/internal/rss"
	"github.com/jichangee/ai-chat/internal/service"
)

type DBRepo interface {
	ListBots(ctx context.Context) ([]model.Bot, error)
	CreateBot(ctx context.Context, bot model.Bot) (*model.Bot, error)
	UpdateBot(ctx context.Context, id uuid.UUID, upd model.BotUpdate) (*model.Bot, error)
	DeleteBot(ctx context.Context, id uuid.UUID) error
	ListFeeds(ctx context.Context) ([]model.Feed, error)
	CreateFeed(ctx context.Context, feed model.Feed) (*model.Feed, error)
	UpdateFeed(ctx context.Context, id uuid.UUID, upd model.FeedUpdate) (*model.Feed, error)
	DeleteFeed(ctx context.Context, id uuid.UUID) error
	GetNotificationRule(ctx context.Context) (*model.NotificationRule, error)
	SaveNotificationRule(ctx context.Context, rule model.NotificationRule) (*model.NotificationRule, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type ChatService interface {
	Send(ctx context.Context, req service.SendRequest) (*service.Reply, error)
	History(ctx context.Context, limit, offset int) (*service.Page, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Message, error)
}

type BotTester interface {
	Ping(ctx context.Context, apiKey, baseURL, modelName string) error
}

type Notifier interface {
	Test(ctx context.Context, barkURL string) error
}

type FeedPoller interface {
	PollAll(ctx context.Context, mode rss.Mode) (*rss.Summary, error)
	Latest(ctx context.Context, feedID uuid.UUID) (*rss.Preview, error)
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateCreateBot(req *api.CreateBotRequest) error
	ValidateUpdateBot(req *api.UpdateBotRequest) error
	ValidateTestBot(req *api.TestBotRequest) error
	ValidateCreateFeed(req *api.CreateFeedRequest) error
	ValidateUpdateFeed(req *api.UpdateFeedRequest) error
	ValidateNotificationRule(req *api.UpdateNotificationRuleRequest) error
}

type SessionIssuer interface {
	Issue(subject string) (string, time.Time, error)
	Validate(token string) (*model.SessionClaims, error)
}
