package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	DefaultBotModel       = "gpt-3.5-turbo"
	DefaultBotTemperature = 0.7
)

type Bot struct {
	ID              uuid.UUID      `db:"id"`
	Name            string         `db:"name"`
	Avatar          string         `db:"avatar"`
	SystemPrompt    string         `db:"system_prompt"`
	TriggerKeywords pq.StringArray `db:"trigger_keywords"`
	Model           string         `db:"model"`
	Temperature     float64        `db:"temperature"`
	APIKey          string         `db:"api_key"`
	BaseURL         string         `db:"base_url"`
	IsActive        bool           `db:"is_active"`
	CreatedAt       time.Time      `db:"created_at"`
}

// ValidKeywords returns the trimmed, non-empty trigger keywords in order.
func (b Bot) ValidKeywords() []string {
	out := make([]string, 0, len(b.TriggerKeywords))
	for _, kw := range b.TriggerKeywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// BotUpdate carries the fields of a partial bot edit; nil means unchanged.
type BotUpdate struct {
	Name            *string
	Avatar          *string
	SystemPrompt    *string
	TriggerKeywords *[]string
	Model           *string
	Temperature     *float64
	APIKey          *string
	BaseURL         *string
	IsActive        *bool
}

func (u BotUpdate) Empty() bool {
	return u.Name == nil && u.Avatar == nil && u.SystemPrompt == nil && u.TriggerKeywords == nil &&
		u.Model == nil && u.Temperature == nil && u.APIKey == nil && u.BaseURL == nil && u.IsActive == nil
}
