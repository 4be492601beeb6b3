// Package service is the chat use case sitting between the REST layer and
// the fanout orchestrator.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/chatcontext"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/fanout"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
	"github.com/jichangee/ai-chat/internal/trigger"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

type SendRequest struct {
	Content         string
	QuotedMessageID *uuid.UUID
	Stream          bool
}

// Reply holds exactly one of Events (stream mode) or Batch.
type Reply struct {
	Mode   string
	Events <-chan model.Event
	Batch  *fanout.BatchResult
}

type Page struct {
	Messages model.MessageList `json:"messages"`
	HasMore  bool              `json:"hasMore"`
}

type Service struct {
	store    Store
	fanout   Fanout
	resolver *trigger.Resolver

	userName     string
	streamLimit  int
	batchLimit   int
	previewRunes int
}

func New(store Store, f Fanout, cfg *config.Config) *Service {
	return &Service{
		store:        store,
		fanout:       f,
		resolver:     trigger.New(trigger.WithPunctuation(cfg.Chat.MentionPunctuation)),
		userName:     cfg.Chat.UserName,
		streamLimit:  cfg.Chat.StreamContextLimit,
		batchLimit:   cfg.Chat.BatchContextLimit,
		previewRunes: cfg.Chat.QuotePreviewRunes,
	}
}

// Send stores the user's message and starts the triggered bots. Streaming
// is used only when the caller asked for it and at least one bot fires;
// otherwise the batch path returns the stored message and the replies.
func (s *Service) Send(ctx context.Context, req SendRequest) (*Reply, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Send")

	text := strings.TrimSpace(req.Content)
	if text == "" {
		return nil, &model.ValidationError{Field: "content", Reason: "message content is required"}
	}

	roster, err := s.store.ListActiveBots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bots: %w", err)
	}

	bots := s.resolver.Resolve(text, roster)
	mode, limit := fanout.ModeBatch, s.batchLimit
	if req.Stream && s.resolver.Triggers(text, roster) {
		mode, limit = fanout.ModeStream, s.streamLimit
	}

	history, err := s.store.RecentMessages(ctx, model.MessageFilter{
		SenderTypes:     []model.SenderType{model.SenderUser, model.SenderAI},
		ExcludeInFlight: true,
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load context: %w", err)
	}

	quoted, err := s.quoted(ctx, req.QuotedMessageID)
	if err != nil {
		return nil, err
	}

	built := chatcontext.Build(history, quoted, text, chatcontext.Options{
		Limit:             limit,
		QuotePreviewRunes: s.previewRunes,
	})

	draft := model.Message{
		Content:    text,
		SenderType: model.SenderUser,
		SenderName: s.userName,
		Metadata:   model.Metadata{},
	}
	if quoted != nil {
		id := quoted.ID
		draft.QuotedMessageID = &id
	}

	session := fanout.Session{
		Message: draft,
		Bots:    bots,
		History: built.History,
		Prompt:  built.Prompt,
	}

	logger.Debug(fmt.Sprintf("mode %s, mentions %v, %d bots triggered, %d context messages",
		mode, trigger.ExtractMentions(text), len(bots), len(built.History)))

	if mode == fanout.ModeStream {
		events, err := s.fanout.Stream(ctx, session)
		if err != nil {
			return nil, err
		}
		return &Reply{Mode: mode, Events: events}, nil
	}

	// a failed batch still reports what was stored before the failure
	res, err := s.fanout.Batch(ctx, session)
	return &Reply{Mode: mode, Batch: res}, err
}

func (s *Service) quoted(ctx context.Context, id *uuid.UUID) (*model.Message, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}

	msg, err := s.store.GetMessage(ctx, *id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quoted message: %w", err)
	}
	return msg, nil
}

// History returns one page of the log in chronological order.
func (s *Service) History(ctx context.Context, limit, offset int) (*Page, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	msgs, err := s.store.ListMessages(ctx, limit+1, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	page := &Page{HasMore: len(msgs) > limit}
	if page.HasMore {
		msgs = msgs[:limit]
	}

	chronological := make(model.MessageList, len(msgs))
	for i, m := range msgs {
		chronological[len(msgs)-1-i] = m
	}
	page.Messages = chronological

	return page, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	if id == uuid.Nil {
		return nil, &model.ValidationError{Field: "message_id", Reason: "message id is required"}
	}
	return s.store.DeleteMessage(ctx, id)
}
