package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jichangee/ai-chat/internal/model"
)

var ruleColumns = []string{"id", "keywords", "bark_url", "is_active"}

// GetNotificationRule returns the deployment's single rule.
func (r *Repository) GetNotificationRule(ctx context.Context) (*model.NotificationRule, error) {
	query, args, err := sq.Select(ruleColumns...).
		From("notification_rules").
		OrderBy("updated_at DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var rule model.NotificationRule
	if err := r.Chk(ctx).GetContext(ctx, &rule, query, args...); err != nil {
		return nil, storeErr("get notification rule", err)
	}

	return &rule, nil
}

// SaveNotificationRule updates the existing rule or creates the first one.
func (r *Repository) SaveNotificationRule(ctx context.Context, rule model.NotificationRule) (*model.NotificationRule, error) {
	if rule.Keywords == nil {
		rule.Keywords = pq.StringArray{}
	}

	var saved model.NotificationRule
	err := r.WithTx(ctx, func(ctx context.Context) error {
		current, err := r.GetNotificationRule(ctx)
		switch {
		case err == nil:
			rule.ID = current.ID
			query, args, err := sq.Update("notification_rules").
				Set("keywords", rule.Keywords).
				Set("bark_url", rule.BarkURL).
				Set("is_active", rule.IsActive).
				Set("updated_at", sq.Expr("now()")).
				Where(sq.Eq{"id": rule.ID}).
				Suffix("RETURNING id, keywords, bark_url, is_active").
				PlaceholderFormat(sq.Dollar).
				ToSql()
			if err != nil {
				return buildErr(err)
			}
			return storeErr("update notification rule", r.Chk(ctx).GetContext(ctx, &saved, query, args...))
		case errors.Is(err, model.ErrNotFound):
			if rule.ID == uuid.Nil {
				rule.ID = uuid.New()
			}
			query, args, err := sq.Insert("notification_rules").
				Columns(ruleColumns...).
				Values(rule.ID, rule.Keywords, rule.BarkURL, rule.IsActive).
				Suffix("RETURNING id, keywords, bark_url, is_active").
				PlaceholderFormat(sq.Dollar).
				ToSql()
			if err != nil {
				return buildErr(err)
			}
			return storeErr("insert notification rule", r.Chk(ctx).GetContext(ctx, &saved, query, args...))
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}
