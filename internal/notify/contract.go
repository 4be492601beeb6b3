//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package notify

import (
	"context"

	"github.com/jichangee/ai-chat/internal/client/bark"
	"github.com/jichangee/ai-chat/internal/model"
)

type RuleStore interface {
	GetNotificationRule(ctx context.Context) (*model.NotificationRule, error)
}

type Sender interface {
	Push(ctx context.Context, barkURL, title, body string, opts bark.Options) error
}
