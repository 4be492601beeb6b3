package postgres

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/model"
)

var messageColumns = []string{
	"id",
	"content",
	"sender_type",
	"sender_id",
	"sender_name",
	"created_at",
	"metadata",
	"quoted_message_id",
}

const inFlightClause = "NOT (COALESCE((metadata->>'loading')::boolean, false) OR COALESCE((metadata->>'error')::boolean, false))"

func returningMessage() string {
	return "RETURNING " + strings.Join(messageColumns, ", ")
}

func (r *Repository) InsertMessage(ctx context.Context, msg model.Message) (*model.Message, error) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.Metadata == nil {
		msg.Metadata = model.Metadata{}
	}

	query, args, err := sq.Insert("messages").
		Columns("id", "content", "sender_type", "sender_id", "sender_name", "metadata", "quoted_message_id").
		Values(msg.ID, msg.Content, string(msg.SenderType), msg.SenderID, msg.SenderName, msg.Metadata, msg.QuotedMessageID).
		Suffix(returningMessage()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var saved model.Message
	if err := r.Chk(ctx).GetContext(ctx, &saved, query, args...); err != nil {
		return nil, storeErr("insert message", err)
	}

	return &saved, nil
}

func (r *Repository) UpdateMessage(ctx context.Context, id uuid.UUID, upd model.MessageUpdate) (*model.Message, error) {
	set := map[string]interface{}{}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Metadata != nil {
		set["metadata"] = upd.Metadata
	}
	if len(set) == 0 {
		return r.GetMessage(ctx, id)
	}

	query, args, err := sq.Update("messages").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returningMessage()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var saved model.Message
	if err := r.Chk(ctx).GetContext(ctx, &saved, query, args...); err != nil {
		return nil, storeErr("update message", err)
	}

	return &saved, nil
}

func (r *Repository) GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var msg model.Message
	if err := r.Chk(ctx).GetContext(ctx, &msg, query, args...); err != nil {
		return nil, storeErr("get message", err)
	}

	return &msg, nil
}

// RecentMessages returns up to limit matching messages, newest first.
func (r *Repository) RecentMessages(ctx context.Context, filter model.MessageFilter, limit int) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		OrderBy("created_at DESC", "seq DESC")

	if len(filter.SenderTypes) > 0 {
		types := make([]string, 0, len(filter.SenderTypes))
		for _, t := range filter.SenderTypes {
			types = append(types, string(t))
		}
		queryBuilder = queryBuilder.Where(sq.Eq{"sender_type": types})
	}
	if filter.ExcludeInFlight {
		queryBuilder = queryBuilder.Where(inFlightClause)
	}
	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	messages := model.MessageList{}
	if err := r.Chk(ctx).SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, storeErr("recent messages", err)
	}

	return messages, nil
}

// ListMessages pages through the log, newest first.
func (r *Repository) ListMessages(ctx context.Context, limit, offset int) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		OrderBy("created_at DESC", "seq DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	messages := model.MessageList{}
	if err := r.Chk(ctx).SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, storeErr("list messages", err)
	}

	return messages, nil
}

// DeleteMessage removes the message. Messages quoting it keep existing with
// the reference cleared.
func (r *Repository) DeleteMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var deleted model.Message

	err := r.WithTx(ctx, func(ctx context.Context) error {
		clear, args, err := sq.Update("messages").
			Set("quoted_message_id", nil).
			Where(sq.Eq{"quoted_message_id": id}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return buildErr(err)
		}
		if _, err := r.Chk(ctx).ExecContext(ctx, clear, args...); err != nil {
			return storeErr("clear quotes", err)
		}

		query, args, err := sq.Delete("messages").
			Where(sq.Eq{"id": id}).
			Suffix(returningMessage()).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return buildErr(err)
		}
		if err := r.Chk(ctx).GetContext(ctx, &deleted, query, args...); err != nil {
			return storeErr("delete message", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &deleted, nil
}
