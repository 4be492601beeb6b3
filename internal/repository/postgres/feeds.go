package postgres

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/model"
)

var feedColumns = []string{
	"id",
	"name",
	"url",
	"last_fetched_at",
	"last_item_date",
	"is_active",
	"created_at",
}

func returningFeed() string {
	return "RETURNING " + strings.Join(feedColumns, ", ")
}

func (r *Repository) ListFeeds(ctx context.Context) ([]model.Feed, error) {
	return r.selectFeeds(ctx, "list feeds", nil)
}

func (r *Repository) ListActiveFeeds(ctx context.Context) ([]model.Feed, error) {
	return r.selectFeeds(ctx, "list active feeds", sq.Eq{"is_active": true})
}

func (r *Repository) selectFeeds(ctx context.Context, op string, where sq.Sqlizer) ([]model.Feed, error) {
	queryBuilder := sq.Select(feedColumns...).
		From("rss_feeds").
		OrderBy("created_at DESC")
	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	feeds := []model.Feed{}
	if err := r.Chk(ctx).SelectContext(ctx, &feeds, query, args...); err != nil {
		return nil, storeErr(op, err)
	}

	return feeds, nil
}

func (r *Repository) GetFeed(ctx context.Context, id uuid.UUID) (*model.Feed, error) {
	query, args, err := sq.Select(feedColumns...).
		From("rss_feeds").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var feed model.Feed
	if err := r.Chk(ctx).GetContext(ctx, &feed, query, args...); err != nil {
		return nil, storeErr("get feed", err)
	}

	return &feed, nil
}

func (r *Repository) CreateFeed(ctx context.Context, feed model.Feed) (*model.Feed, error) {
	if feed.ID == uuid.Nil {
		feed.ID = uuid.New()
	}

	query, args, err := sq.Insert("rss_feeds").
		Columns("id", "name", "url", "is_active").
		Values(feed.ID, feed.Name, feed.URL, feed.IsActive).
		Suffix(returningFeed()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var saved model.Feed
	if err := r.Chk(ctx).GetContext(ctx, &saved, query, args...); err != nil {
		return nil, storeErr("create feed", err)
	}

	return &saved, nil
}

func (r *Repository) UpdateFeed(ctx context.Context, id uuid.UUID, upd model.FeedUpdate) (*model.Feed, error) {
	if upd.Empty() {
		return r.GetFeed(ctx, id)
	}

	set := map[string]interface{}{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.URL != nil {
		set["url"] = *upd.URL
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	query, args, err := sq.Update("rss_feeds").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returningFeed()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, buildErr(err)
	}

	var saved model.Feed
	if err := r.Chk(ctx).GetContext(ctx, &saved, query, args...); err != nil {
		return nil, storeErr("update feed", err)
	}

	return &saved, nil
}

// MarkFeedFetched records a poll; lastItemDate is kept when nil.
func (r *Repository) MarkFeedFetched(ctx context.Context, id uuid.UUID, fetchedAt time.Time, lastItemDate *time.Time) error {
	queryBuilder := sq.Update("rss_feeds").
		Set("last_fetched_at", fetchedAt).
		Where(sq.Eq{"id": id})
	if lastItemDate != nil {
		queryBuilder = queryBuilder.Set("last_item_date", *lastItemDate)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return buildErr(err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("mark feed fetched", err)
	}

	return expectOne("mark feed fetched", res)
}

func (r *Repository) DeleteFeed(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Delete("rss_feeds").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return buildErr(err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("delete feed", err)
	}

	return expectOne("delete feed", res)
}
