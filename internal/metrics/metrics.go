// Package metrics holds the prometheus collectors of the chat pipeline. A nil
// *Metrics records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aichat"

const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"

	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
	ResultSkipped = "skipped"
)

type Metrics struct {
	sessions      *prometheus.CounterVec
	replies       *prometheus.CounterVec
	replySeconds  *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	rssItems      prometheus.Counter
	httpRequests  *prometheus.CounterVec
}

// New creates the collectors and registers them on reg when it is not nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fanout_sessions_total",
			Help:      "Incoming messages handled, by fanout mode.",
		}, []string{"mode"}),
		replies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bot_replies_total",
			Help:      "Bot replies settled, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		replySeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bot_reply_seconds",
			Help:      "Time from bot task start to settle.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 120},
		}, []string{"mode"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Push notifications, by result.",
		}, []string{"result"}),
		rssItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rss_items_total",
			Help:      "Feed items posted into the chat.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method and status code.",
		}, []string{"method", "status"}),
	}

	if reg != nil {
		reg.MustRegister(m.sessions, m.replies, m.replySeconds, m.notifications, m.rssItems, m.httpRequests)
	}

	return m
}

func (m *Metrics) Session(mode string) {
	if m == nil {
		return
	}
	m.sessions.WithLabelValues(mode).Inc()
}

func (m *Metrics) Reply(mode, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.replies.WithLabelValues(mode, outcome).Inc()
	m.replySeconds.WithLabelValues(mode).Observe(time.Since(started).Seconds())
}

func (m *Metrics) Notification(result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(result).Inc()
}

func (m *Metrics) RSSItems(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.rssItems.Add(float64(n))
}

func (m *Metrics) HTTPRequest(method string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
