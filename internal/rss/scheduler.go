package rss

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/jichangee/ai-chat/internal/config"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
)

type Scheduler struct {
	poller *Poller
	c      *cron.Cron
	spec   string
	ctx    context.Context
}

// NewScheduler runs scheduled polls on the standard five-field cron spec.
// ctx carries the logger and bounds every run.
func NewScheduler(ctx context.Context, poller *Poller, cfg *config.Config) *Scheduler {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Scheduler{
		poller: poller,
		c:      cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		spec:   cfg.RSS.Schedule,
		ctx:    ctx,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.c.AddFunc(s.spec, s.Run); err != nil {
		return fmt.Errorf("invalid rss schedule %q: %w", s.spec, err)
	}
	s.c.Start()
	return nil
}

// Run executes one scheduled poll.
func (s *Scheduler) Run() {
	logger := logger_lib.FromContext(s.ctx, config.KeyLogger)
	logger.AddFuncName("Scheduler")

	if _, err := s.poller.PollAll(s.ctx, ModeScheduled); err != nil {
		logger.Error(fmt.Sprintf("scheduled rss poll failed: %v", err))
	}
}

// Stop waits for a running poll to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
	}
}
