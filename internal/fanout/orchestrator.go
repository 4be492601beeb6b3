// Package fanout runs the triggered bots of one incoming message and merges
// their replies into a single event sequence.
//
// Streaming mode runs one task per bot, concurrently. Each task owns one
// placeholder row, and a failing task only settles itself. Batch mode calls
// the bots one after another and stops at the first failure.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/metrics"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
)

const (
	ModeStream = "stream"
	ModeBatch  = "batch"
)

var errEmptyReply = errors.New("empty reply")

// Session is the read-only input of one fanout.
type Session struct {
	// Message is the user's message as it will be stored.
	Message model.Message
	Bots    []model.Bot
	History []model.RoleMessage
	// Prompt is what the bots receive in place of Message.Content.
	Prompt string
}

type BatchResult struct {
	UserMessage model.Message   `json:"userMessage"`
	AIMessages  []model.Message `json:"aiMessages"`
}

// BatchError aborts a batch fanout at the first failing bot.
type BatchError struct {
	BotID   uuid.UUID
	BotName string
	Err     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s error: %v", e.BotName, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

type Orchestrator struct {
	store     Store
	responder Responder
	notifier  Notifier
	metrics   *metrics.Metrics

	timeout time.Duration
	flush   time.Duration
	buffer  int
}

func New(store Store, responder Responder, notifier Notifier, cfg *config.Config, m *metrics.Metrics) *Orchestrator {
	return &Orchestrator{
		store:     store,
		responder: responder,
		notifier:  notifier,
		metrics:   m,
		timeout:   cfg.Responder.Timeout,
		flush:     cfg.Chat.PlaceholderFlush,
		buffer:    cfg.Chat.EventBuffer,
	}
}

// FailureContent is the persisted text of a failed reply.
func FailureContent(botName string, err error) string {
	return fmt.Sprintf("❌ %s error: %s", botName, err.Error())
}

// Stream stores the user message and starts one task per bot. The returned
// channel yields the user event first and is closed once every task has
// completed or failed.
//
// Tasks run detached from ctx: cancelling it stops event delivery but not
// generation, and final states are still persisted. The caller must either
// drain the channel or cancel ctx.
func (o *Orchestrator) Stream(ctx context.Context, s Session) (<-chan model.Event, error) {
	user, err := o.saveUserMessage(ctx, s.Message)
	if err != nil {
		return nil, err
	}
	o.metrics.Session(ModeStream)

	out := make(chan model.Event, o.buffer)
	emit := func(ev model.Event) {
		select {
		case out <- ev:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(out)

		emit(model.Event{Type: model.EventUser, Message: user})

		var wg sync.WaitGroup
		for _, bot := range s.Bots {
			wg.Add(1)
			go func(bot model.Bot) {
				defer wg.Done()
				o.runStreamTask(ctx, s, bot, emit)
			}(bot)
		}
		wg.Wait()
	}()

	return out, nil
}

// Batch stores the user message, then asks each bot in turn and stores its
// reply. The first failure stops the loop; the returned result then holds
// what was completed so far alongside a *BatchError.
func (o *Orchestrator) Batch(ctx context.Context, s Session) (*BatchResult, error) {
	user, err := o.saveUserMessage(ctx, s.Message)
	if err != nil {
		return nil, err
	}
	o.metrics.Session(ModeBatch)

	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Batch")

	res := &BatchResult{UserMessage: *user, AIMessages: []model.Message{}}

	for _, bot := range s.Bots {
		started := time.Now()

		reply, err := o.completeDetached(ctx, bot, s)
		if err != nil {
			o.metrics.Reply(ModeBatch, metrics.OutcomeFailed, started)
			logger.Error(fmt.Sprintf("bot %s (%s) failed, model %s, base url %q, prompt %d chars, context %d messages: %v",
				bot.Name, bot.ID, bot.Model, bot.BaseURL, len([]rune(s.Prompt)), len(s.History), err))
			return res, &BatchError{BotID: bot.ID, BotName: bot.Name, Err: err}
		}

		botID := bot.ID
		msg, err := o.store.InsertMessage(context.WithoutCancel(ctx), model.Message{
			Content:    reply,
			SenderType: model.SenderAI,
			SenderID:   &botID,
			SenderName: bot.Name,
			Metadata:   model.Metadata{model.MetaModel: bot.Model, model.MetaBotID: bot.ID.String()},
		})
		if err != nil {
			o.metrics.Reply(ModeBatch, metrics.OutcomeFailed, started)
			return res, &BatchError{BotID: bot.ID, BotName: bot.Name, Err: fmt.Errorf("failed to save reply: %w", err)}
		}

		o.metrics.Reply(ModeBatch, metrics.OutcomeCompleted, started)
		o.notifier.NotifyIfMatch(ctx, *msg)
		res.AIMessages = append(res.AIMessages, *msg)
	}

	return res, nil
}

func (o *Orchestrator) saveUserMessage(ctx context.Context, draft model.Message) (*model.Message, error) {
	draft.SenderType = model.SenderUser
	if draft.Metadata == nil {
		draft.Metadata = model.Metadata{}
	}

	user, err := o.store.InsertMessage(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	o.notifier.NotifyIfMatch(ctx, *user)
	return user, nil
}

func (o *Orchestrator) completeDetached(ctx context.Context, bot model.Bot, s Session) (string, error) {
	taskCtx, cancel := o.taskContext(ctx)
	defer cancel()

	reply, err := o.responder.Complete(taskCtx, bot, s.Prompt, s.History)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "", errEmptyReply
	}
	return reply, nil
}

// taskContext keeps the values of ctx (logger) but not its cancellation.
func (o *Orchestrator) taskContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if o.timeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, o.timeout)
}

// streamTask is the lifecycle of one bot in streaming mode:
// started, streaming deltas, then completed or failed exactly once.
type streamTask struct {
	o       *Orchestrator
	bot     model.Bot
	session Session
	emit    func(model.Event)
	logger  logger_lib.LoggerInterface

	botID   uuid.UUID
	msgID   uuid.UUID
	hasRow  bool
	started time.Time
	settled bool
}

func (o *Orchestrator) runStreamTask(clientCtx context.Context, s Session, bot model.Bot, emit func(model.Event)) {
	ctx, cancel := o.taskContext(clientCtx)
	defer cancel()

	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("streamTask")

	t := &streamTask{
		o:       o,
		bot:     bot,
		session: s,
		emit:    emit,
		logger:  logger.With("bot_id", bot.ID.String()),
		botID:   bot.ID,
		started: time.Now(),
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if !t.settled {
			t.fail(ctx, fmt.Errorf("internal error: %v", r))
			return
		}
		t.logger.Error(fmt.Sprintf("panic after reply settled: %v", r))
	}()

	t.run(ctx)
}

func (t *streamTask) run(ctx context.Context) {
	t.start(ctx)

	stream, err := t.o.responder.Stream(ctx, t.bot, t.session.Prompt, t.session.History)
	if err != nil {
		t.fail(ctx, err)
		return
	}
	defer stream.Close() //nolint:errcheck // .

	var (
		reply     strings.Builder
		lastFlush time.Time
	)
	for {
		delta, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.fail(ctx, err)
			return
		}
		if delta == "" {
			continue
		}

		reply.WriteString(delta)
		t.emit(model.Event{Type: model.EventAIChunk, BotID: &t.botID, MessageID: &t.msgID, Content: delta})

		if t.hasRow && time.Since(lastFlush) >= t.o.flush {
			t.flushPartial(ctx, reply.String())
			lastFlush = time.Now()
		}
	}

	if reply.Len() == 0 {
		t.fail(ctx, errEmptyReply)
		return
	}

	t.complete(ctx, reply.String())
}

// start persists the placeholder. Without one the task still runs under a
// temporary id, and the reply is inserted on completion.
func (t *streamTask) start(ctx context.Context) {
	placeholder, err := t.o.store.InsertMessage(ctx, model.Message{
		Content:    model.ThinkingSentinel,
		SenderType: model.SenderAI,
		SenderID:   &t.botID,
		SenderName: t.bot.Name,
		Metadata:   model.AIMetadata(t.bot, true, false),
	})
	if err != nil {
		t.logger.Error(fmt.Sprintf("failed to create placeholder: %v", err))
		t.msgID = uuid.New()
	} else {
		t.msgID = placeholder.ID
		t.hasRow = true
	}

	t.emit(model.Event{Type: model.EventAIStart, BotID: &t.botID, BotName: t.bot.Name, MessageID: &t.msgID})
}

func (t *streamTask) flushPartial(ctx context.Context, content string) {
	if _, err := t.o.store.UpdateMessage(ctx, t.msgID, model.MessageUpdate{Content: &content}); err != nil {
		t.logger.Warn(fmt.Sprintf("failed to update placeholder %s: %v", t.msgID, err))
	}
}

func (t *streamTask) complete(ctx context.Context, content string) {
	md := model.AIMetadata(t.bot, false, false)

	var (
		msg *model.Message
		err error
	)
	if t.hasRow {
		msg, err = t.o.store.UpdateMessage(ctx, t.msgID, model.MessageUpdate{Content: &content, Metadata: md})
	} else {
		msg, err = t.o.store.InsertMessage(ctx, model.Message{
			Content:    content,
			SenderType: model.SenderAI,
			SenderID:   &t.botID,
			SenderName: t.bot.Name,
			Metadata:   md,
		})
	}
	if err != nil {
		t.fail(ctx, fmt.Errorf("failed to save reply: %w", err))
		return
	}

	t.settled = true
	t.o.metrics.Reply(ModeStream, metrics.OutcomeCompleted, t.started)
	t.emit(model.Event{Type: model.EventAIComplete, BotID: &t.botID, MessageID: &t.msgID, Message: msg})
	t.o.notifier.NotifyIfMatch(ctx, *msg)
}

func (t *streamTask) fail(ctx context.Context, cause error) {
	t.settled = true
	t.o.metrics.Reply(ModeStream, metrics.OutcomeFailed, t.started)

	t.logger.Error(fmt.Sprintf("bot %s failed, model %s, base url %q, prompt %d chars, context %d messages: %v",
		t.bot.Name, t.bot.Model, t.bot.BaseURL, len([]rune(t.session.Prompt)), len(t.session.History), cause))

	if t.hasRow {
		content := FailureContent(t.bot.Name, cause)
		if _, err := t.o.store.UpdateMessage(ctx, t.msgID, model.MessageUpdate{
			Content:  &content,
			Metadata: model.AIMetadata(t.bot, false, true),
		}); err != nil {
			t.logger.Error(fmt.Sprintf("failed to record failure on %s: %v", t.msgID, err))
		}
	}

	t.emit(model.Event{Type: model.EventError, BotID: &t.botID, MessageID: &t.msgID, Error: cause.Error()})
}
