package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NotificationRule is a singleton per deployment.
type NotificationRule struct {
	ID       uuid.UUID      `db:"id"`
	Keywords pq.StringArray `db:"keywords"`
	BarkURL  string         `db:"bark_url"`
	IsActive bool           `db:"is_active"`
}
