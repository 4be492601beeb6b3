package model

import (
	"time"

	"github.com/google/uuid"
)

type Feed struct {
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	URL           string     `db:"url"`
	LastFetchedAt *time.Time `db:"last_fetched_at"`
	LastItemDate  *time.Time `db:"last_item_date"`
	IsActive      bool       `db:"is_active"`
	CreatedAt     time.Time  `db:"created_at"`
}

type FeedUpdate struct {
	Name     *string
	URL      *string
	IsActive *bool
}

func (u FeedUpdate) Empty() bool {
	return u.Name == nil && u.URL == nil && u.IsActive == nil
}

// FeedItem is one entry of a fetched RSS/Atom document.
type FeedItem struct {
	Title       string
	Link        string
	Published   time.Time
	Content     string
	Description string
}
