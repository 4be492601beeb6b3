// Package memory is a process-local store with the semantics of the
// postgres repository. It backs dev mode and scenario tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jichangee/ai-chat/internal/model"
)

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type Store struct {
	mu sync.RWMutex

	now      func() time.Time
	lastTime time.Time

	messages []model.Message
	bots     []model.Bot
	feeds    []model.Feed
	rule     *model.NotificationRule
}

func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() {}

func (s *Store) Ping(context.Context) error { return nil }

// WithTx runs cb directly; every operation is already atomic.
func (s *Store) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	return cb(ctx)
}

// stamp returns a creation time strictly after the previous one, at the
// microsecond precision postgres keeps.
func (s *Store) stamp() time.Time {
	now := s.now().UTC().Truncate(time.Microsecond)
	if !now.After(s.lastTime) {
		now = s.lastTime.Add(time.Microsecond)
	}
	s.lastTime = now
	return now
}

func (s *Store) InsertMessage(_ context.Context, msg model.Message) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if s.messageIndex(msg.ID) >= 0 {
		return nil, model.ErrDuplicate
	}
	if msg.QuotedMessageID != nil && s.messageIndex(*msg.QuotedMessageID) < 0 {
		msg.QuotedMessageID = nil
	}

	msg.CreatedAt = s.stamp()
	msg.Metadata = copyMetadata(msg.Metadata)
	s.messages = append(s.messages, msg)

	out := cloneMessage(msg)
	return &out, nil
}

func (s *Store) UpdateMessage(_ context.Context, id uuid.UUID, upd model.MessageUpdate) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.messageIndex(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}

	if upd.Content != nil {
		s.messages[i].Content = *upd.Content
	}
	if upd.Metadata != nil {
		s.messages[i].Metadata = copyMetadata(upd.Metadata)
	}

	out := cloneMessage(s.messages[i])
	return &out, nil
}

func (s *Store) GetMessage(_ context.Context, id uuid.UUID) (*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.messageIndex(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}
	out := cloneMessage(s.messages[i])
	return &out, nil
}

// RecentMessages returns up to limit matching messages, newest first.
func (s *Store) RecentMessages(_ context.Context, filter model.MessageFilter, limit int) (model.MessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.MessageList{}
	for i := len(s.messages) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		msg := s.messages[i]
		if len(filter.SenderTypes) > 0 && !hasSender(filter.SenderTypes, msg.SenderType) {
			continue
		}
		if filter.ExcludeInFlight && msg.InFlight() {
			continue
		}
		out = append(out, cloneMessage(msg))
	}
	return out, nil
}

// ListMessages pages through the log, newest first.
func (s *Store) ListMessages(_ context.Context, limit, offset int) (model.MessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.MessageList{}
	for i := len(s.messages) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, cloneMessage(s.messages[i]))
	}
	return out, nil
}

// DeleteMessage removes the message and clears references quoting it.
func (s *Store) DeleteMessage(_ context.Context, id uuid.UUID) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.messageIndex(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}

	deleted := s.messages[i]
	s.messages = append(s.messages[:i], s.messages[i+1:]...)

	for j := range s.messages {
		if q := s.messages[j].QuotedMessageID; q != nil && *q == id {
			s.messages[j].QuotedMessageID = nil
		}
	}

	return &deleted, nil
}

func (s *Store) messageIndex(id uuid.UUID) int {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}

// ListBots returns every bot, newest first.
func (s *Store) ListBots(_ context.Context) ([]model.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Bot, 0, len(s.bots))
	for i := len(s.bots) - 1; i >= 0; i-- {
		out = append(out, cloneBot(s.bots[i]))
	}
	return out, nil
}

// ListActiveBots returns the roster in creation order.
func (s *Store) ListActiveBots(_ context.Context) ([]model.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Bot{}
	for _, b := range s.bots {
		if b.IsActive {
			out = append(out, cloneBot(b))
		}
	}
	return out, nil
}

func (s *Store) GetBot(_ context.Context, id uuid.UUID) (*model.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.botIndex(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}
	out := cloneBot(s.bots[i])
	return &out, nil
}

func (s *Store) CreateBot(_ context.Context, bot model.Bot) (*model.Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.botNameTaken(bot.Name, uuid.Nil) {
		return nil, model.ErrDuplicate
	}
	if bot.ID == uuid.Nil {
		bot.ID = uuid.New()
	}
	bot.CreatedAt = s.stamp()
	bot = cloneBot(bot)
	s.bots = append(s.bots, bot)

	out := cloneBot(bot)
	return &out, nil
}

func (s *Store) UpdateBot(_ context.Context, id uuid.UUID, upd model.BotUpdate) (*model.Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.botIndex(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}
	if upd.Name != nil && s.botNameTaken(*upd.Name, id) {
		return nil, model.ErrDuplicate
	}

	b := &s.bots[i]
	if upd.Name != nil {
		b.Name = *upd.Name
	}
	if upd.Avatar != nil {
		b.Avatar = *upd.Avatar
	}
	if upd.SystemPrompt != nil {
		b.SystemPrompt = *upd.SystemPrompt
	}
	if upd.TriggerKeywords != nil {
		b.TriggerKeywords = append(pq.StringArray{}, *upd.TriggerKeywords...)
	}
	if upd.Model != nil {
		b.Model = *upd.Model
	}
	if upd.Temperature != nil {
		b.Temperature = *upd.Temperature
	}
	if upd.APIKey != nil {
		b.APIKey = *upd.APIKey
	}
	if upd.BaseURL != nil {
		b.BaseURL = *upd.BaseURL
	}
	if upd.IsActive != nil {
		b.IsActive = *upd.IsActive
	}

	out := cloneBot(*b)
	return &out, nil
}

func (s *Store) DeleteBot(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.botIndex(id)
	if i < 0 {
		return model.ErrNotFound
	}
	s.bots = append(s.bots[:i], s.bots[i+1:]...)
	return nil
}

func (s *Store) botIndex(id uuid.UUID) int {
	for i := range s.bots {
		if s.bots[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) botNameTaken(name string, except uuid.UUID) bool {
	for _, b := range s.bots {
		if b.ID != except && strings.EqualFold(b.Name, name) {
			return true
		}
	}
	return false
}

// ListFeeds returns every feed, newest first.
func (s *Store) ListFeeds(_ context.Context) ([]model.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Feed, 0, len(s.feeds))
	for i := len(s.feeds) - 1; i >= 0; i-- {
		out = append(out, s.feeds[i])
	}
	return out, nil
}

func (s *Store) ListActiveFeeds(_ context.Context) ([]model.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Feed{}
	for _, f := range s.feeds {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *Store) GetFeed(_ context.Context, id uuid.UUID) (*model.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.feedIndex(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}
	out := s.feeds[i]
	return &out, nil
}

func (s *Store) CreateFeed(_ context.Context, feed model.Feed) (*model.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.feeds {
		if f.URL == feed.URL {
			return nil, model.ErrDuplicate
		}
	}
	if feed.ID == uuid.Nil {
		feed.ID = uuid.New()
	}
	feed.CreatedAt = s.stamp()
	s.feeds = append(s.feeds, feed)

	out := feed
	return &out, nil
}

func (s *Store) UpdateFeed(_ context.Context, id uuid.UUID, upd model.FeedUpdate) (*model.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.feedIndex(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}
	if upd.URL != nil {
		for _, f := range s.feeds {
			if f.ID != id && f.URL == *upd.URL {
				return nil, model.ErrDuplicate
			}
		}
	}

	f := &s.feeds[i]
	if upd.Name != nil {
		f.Name = *upd.Name
	}
	if upd.URL != nil {
		f.URL = *upd.URL
	}
	if upd.IsActive != nil {
		f.IsActive = *upd.IsActive
	}

	out := *f
	return &out, nil
}

// MarkFeedFetched records a poll; lastItemDate is kept when nil.
func (s *Store) MarkFeedFetched(_ context.Context, id uuid.UUID, fetchedAt time.Time, lastItemDate *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.feedIndex(id)
	if i < 0 {
		return model.ErrNotFound
	}

	fetched := fetchedAt
	s.feeds[i].LastFetchedAt = &fetched
	if lastItemDate != nil {
		last := *lastItemDate
		s.feeds[i].LastItemDate = &last
	}
	return nil
}

func (s *Store) DeleteFeed(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.feedIndex(id)
	if i < 0 {
		return model.ErrNotFound
	}
	s.feeds = append(s.feeds[:i], s.feeds[i+1:]...)
	return nil
}

func (s *Store) feedIndex(id uuid.UUID) int {
	for i := range s.feeds {
		if s.feeds[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) GetNotificationRule(_ context.Context) (*model.NotificationRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.rule == nil {
		return nil, model.ErrNotFound
	}
	out := *s.rule
	out.Keywords = append(pq.StringArray{}, s.rule.Keywords...)
	return &out, nil
}

// SaveNotificationRule replaces the singleton rule.
func (s *Store) SaveNotificationRule(_ context.Context, rule model.NotificationRule) (*model.NotificationRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rule != nil {
		rule.ID = s.rule.ID
	} else if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	rule.Keywords = append(pq.StringArray{}, rule.Keywords...)
	s.rule = &rule

	out := rule
	out.Keywords = append(pq.StringArray{}, rule.Keywords...)
	return &out, nil
}

func hasSender(types []model.SenderType, t model.SenderType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func copyMetadata(md model.Metadata) model.Metadata {
	out := make(model.Metadata, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}

func cloneMessage(msg model.Message) model.Message {
	msg.Metadata = copyMetadata(msg.Metadata)
	return msg
}

func cloneBot(b model.Bot) model.Bot {
	b.TriggerKeywords = append(pq.StringArray{}, b.TriggerKeywords...)
	return b
}
