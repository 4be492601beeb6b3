// Package notify pushes Bark notifications for chat messages that match the
// deployment's keyword rule.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jichangee/ai-chat/internal/client/bark"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/metrics"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
)

const (
	GroupChat = "ai-chat"
	GroupRSS  = "ai-chat-rss"
	GroupTest = "ai-chat-test"

	bodyRunes = 100
)

var ErrRateLimited = errors.New("notification rate limit exceeded")

type Dispatcher struct {
	rules    RuleStore
	sender   Sender
	limiter  *rate.Limiter
	timeout  time.Duration
	userName string
	metrics  *metrics.Metrics

	wg sync.WaitGroup
}

func New(rules RuleStore, sender Sender, cfg *config.Config, m *metrics.Metrics) *Dispatcher {
	limit := rate.Limit(cfg.Bark.RatePerSec)
	if cfg.Bark.RatePerSec <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Bark.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Dispatcher{
		rules:    rules,
		sender:   sender,
		limiter:  rate.NewLimiter(limit, burst),
		timeout:  cfg.Bark.Timeout,
		userName: cfg.Chat.UserName,
		metrics:  m,
	}
}

// NotifyIfMatch checks msg in the background. The check outlives ctx
// cancellation and never reports back; failures only reach the log.
func (d *Dispatcher) NotifyIfMatch(ctx context.Context, msg model.Message) {
	detached := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		logger := logger_lib.FromContext(detached, config.KeyLogger)
		logger.AddFuncName("NotifyIfMatch")

		defer func() {
			if r := recover(); r != nil {
				logger.Error(fmt.Sprintf("notification check panicked: %v", r))
			}
		}()

		ctx := detached
		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(detached, d.timeout)
			defer cancel()
		}

		sent, err := d.Check(ctx, msg)
		if err != nil {
			logger.Warn(fmt.Sprintf("failed to notify for message %s: %v", msg.ID, err))
			return
		}
		if sent {
			logger.Debug(fmt.Sprintf("notification sent for message %s", msg.ID))
		}
	}()
}

// Check pushes a notification for msg when the active rule matches it and
// reports whether one was sent.
func (d *Dispatcher) Check(ctx context.Context, msg model.Message) (bool, error) {
	rule, err := d.rules.GetNotificationRule(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		d.metrics.Notification(metrics.ResultFailed)
		return false, fmt.Errorf("failed to load notification rule: %w", err)
	}

	if rule == nil || !rule.IsActive || rule.BarkURL == "" || len(rule.Keywords) == 0 {
		return false, nil
	}

	if !MatchKeywords(msg.Content, rule.Keywords) {
		d.metrics.Notification(metrics.ResultSkipped)
		return false, nil
	}

	if !d.limiter.Allow() {
		d.metrics.Notification(metrics.ResultDropped)
		return false, ErrRateLimited
	}

	title, group := d.headline(msg)
	if err := d.sender.Push(ctx, rule.BarkURL, title, truncate(msg.Content, bodyRunes), bark.Options{Group: group}); err != nil {
		d.metrics.Notification(metrics.ResultFailed)
		return false, fmt.Errorf("failed to push notification: %w", err)
	}

	d.metrics.Notification(metrics.ResultSent)
	return true, nil
}

// Test sends a fixed notification to barkURL, bypassing the rule.
func (d *Dispatcher) Test(ctx context.Context, barkURL string) error {
	if barkURL == "" {
		return &model.ValidationError{Field: "bark_url", Reason: "must not be empty"}
	}
	return d.sender.Push(ctx, barkURL, "Test notification", "This is a test notification from the AI group chat", bark.Options{Group: GroupTest})
}

// Wait blocks until every background check has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) headline(msg model.Message) (string, string) {
	switch msg.SenderType {
	case model.SenderUser:
		return "New message: " + d.userName, GroupChat
	case model.SenderRSS:
		return "RSS update: " + msg.SenderName, GroupRSS
	default:
		return "New message: " + msg.SenderName, GroupChat
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
