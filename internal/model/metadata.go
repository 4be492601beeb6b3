package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	MetaLoading = "loading"
	MetaError   = "error"
	MetaModel   = "model"
	MetaBotID   = "bot_id"
)

// Metadata is the opaque key-value bag stored as jsonb next to a message.
type Metadata map[string]any

// AIMetadata builds the envelope carried by bot replies.
func AIMetadata(bot Bot, loading, failed bool) Metadata {
	md := Metadata{
		MetaModel:   bot.Model,
		MetaBotID:   bot.ID.String(),
		MetaLoading: loading,
	}
	if failed {
		md[MetaError] = true
	}
	return md
}

func (m Metadata) Loading() bool { return m.flag(MetaLoading) }

func (m Metadata) Failed() bool { return m.flag(MetaError) }

// BotID returns the bot recorded in the envelope, if any.
func (m Metadata) BotID() (uuid.UUID, bool) {
	raw, ok := m[MetaBotID].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (m Metadata) flag(name string) bool {
	v, ok := m[name].(bool)
	return ok && v
}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}

	if len(data) == 0 {
		*m = Metadata{}
		return nil
	}

	out := Metadata{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode metadata: %w", err)
	}
	*m = out
	return nil
}
