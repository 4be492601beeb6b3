package postgres

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jichangee/ai-chat/internal/model"
)

var botColumns = []string{
	"id",
	"name",
	"avatar",
	"system_prompt",
	"trigger_keywords",
	"model",
	"temperature",
	"api_key",
	"base_url",
	"is_active",
	"created_at",
}

func returningBot() string {
	return "RETURNING " + strings.Join(botColumns, ", ")
}

// ListBots returns every bot, newest first.
func (r *Repository) ListBots(ctx context.Context) ([]model.Bot, error) {
	query, args, err := sq.Select(botColumns...).
		From("ai_bots").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	bots := []model.Bot{}
	if err := r.Chk(ctx).SelectContext(ctx, &bots, query, args...); err != nil {
		return nil, storeErr("list bots", err)
	}

	return bots, nil
}

// ListActiveBots returns the roster in creation order.
func (r *Repository) ListActiveBots(ctx context.Context) ([]model.Bot, error) {
	query, args, err := sq.Select(botColumns...).
		From("ai_bots").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	bots := []model.Bot{}
	if err := r.Chk(ctx).SelectContext(ctx, &bots, query, args...); err != nil {
		return nil, storeErr("list active bots", err)
	}

	return bots, nil
}

func (r *Repository) GetBot(ctx context.Context, id uuid.UUID) (*model.Bot, error) {
	query, args, err := sq.Select(botColumns...).
		From("ai_bots").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var bot model.Bot
	if err := r.Chk(ctx).GetContext(ctx, &bot, query, args...); err != nil {
		return nil, storeErr("get bot", err)
	}

	return &bot, nil
}

func (r *Repository) CreateBot(ctx context.Context, bot model.Bot) (*model.Bot, error) {
	if bot.ID == uuid.Nil {
		bot.ID = uuid.New()
	}
	if bot.TriggerKeywords == nil {
		bot.TriggerKeywords = pq.StringArray{}
	}

	query, args, err := sq.Insert("ai_bots").
		Columns("id", "name", "avatar", "system_prompt", "trigger_keywords", "model", "temperature", "api_key", "base_url", "is_active").
		Values(bot.ID, bot.Name, bot.Avatar, bot.SystemPrompt, bot.TriggerKeywords, bot.Model, bot.Temperature, bot.APIKey, bot.BaseURL, bot.IsActive).
		Suffix(returningBot()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var saved model.Bot
	if err := r.Chk(ctx).GetContext(ctx, &saved, query, args...); err != nil {
		return nil, storeErr("create bot", err)
	}

	return &saved, nil
}

func (r *Repository) UpdateBot(ctx context.Context, id uuid.UUID, upd model.BotUpdate) (*model.Bot, error) {
	if upd.Empty() {
		return r.GetBot(ctx, id)
	}

	set := map[string]interface{}{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.SystemPrompt != nil {
		set["system_prompt"] = *upd.SystemPrompt
	}
	if upd.TriggerKeywords != nil {
		set["trigger_keywords"] = pq.StringArray(*upd.TriggerKeywords)
	}
	if upd.Model != nil {
		set["model"] = *upd.Model
	}
	if upd.Temperature != nil {
		set["temperature"] = *upd.Temperature
	}
	if upd.APIKey != nil {
		set["api_key"] = *upd.APIKey
	}
	if upd.BaseURL != nil {
		set["base_url"] = *upd.BaseURL
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	query, args, err := sq.Update("ai_bots").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returningBot()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var saved model.Bot
	if err := r.Chk(ctx).GetContext(ctx, &saved, query, args...); err != nil {
		return nil, storeErr("update bot", err)
	}

	return &saved, nil
}

func (r *Repository) DeleteBot(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Delete("ai_bots").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return buildErr(err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("delete bot", err)
	}

	return expectOne("delete bot", res)
}
