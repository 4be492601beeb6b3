//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package fanout

import (
	"context"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/client/responder"
	"github.com/jichangee/ai-chat/internal/model"
)

type Store interface {
	InsertMessage(ctx context.Context, msg model.Message) (*model.Message, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, upd model.MessageUpdate) (*model.Message, error)
}

type Responder interface {
	Complete(ctx context.Context, bot model.Bot, prompt string, history []model.RoleMessage) (string, error)
	Stream(ctx context.Context, bot model.Bot, prompt string, history []model.RoleMessage) (responder.Deltas, error)
}

type Notifier interface {
	NotifyIfMatch(ctx context.Context, msg model.Message)
}
