//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/fanout"
	"github.com/jichangee/ai-chat/internal/model"
)

type Store interface {
	ListActiveBots(ctx context.Context) ([]model.Bot, error)
	RecentMessages(ctx context.Context, filter model.MessageFilter, limit int) (model.MessageList, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	ListMessages(ctx context.Context, limit, offset int) (model.MessageList, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
}

type Fanout interface {
	Stream(ctx context.Context, s fanout.Session) (<-chan model.Event, error)
	Batch(ctx context.Context, s fanout.Session) (*fanout.BatchResult, error)
}
