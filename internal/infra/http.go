package infra

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/config"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
)

// publicPaths stay reachable without a session cookie.
var publicPaths = []string{
	"/api/auth/",
	"/api/cron/rss",
}

func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.With("method", r.Method).With("path", r.URL.Path)
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			reqLogger = reqLogger.With("request_id", reqID)
		}
		ctx := context.WithValue(r.Context(), config.KeyLogger, reqLogger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthHTTP gates /api routes behind the session cookie. With no password
// configured every request passes.
func AuthHTTP(cfg *config.Config, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Auth.Password == "" || !strings.HasPrefix(r.URL.Path, "/api/") || isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if !Authenticated(r, tokens) {
				logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
				logger.AddFuncName("AuthHTTP")
				logger.Warn("rejected request without a valid session")
				writeError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Authenticated reports whether r carries a valid session cookie.
func Authenticated(r *http.Request, tokens TokenValidator) bool {
	cookie, err := r.Cookie(config.AuthCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = tokens.Validate(cookie.Value)
	return err == nil
}

func MetricsHTTP(m HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.HTTPRequest(r.Method, status)
		})
	}
}

// limiterIdle is how long an unused bucket is kept before a sweep drops it.
const limiterIdle = 10 * time.Minute

type limiterEntry struct {
	l    *rate.Limiter
	seen time.Time
}

// LimiterPool keeps one token bucket per client IP. Buckets idle for longer
// than limiterIdle are dropped, checked at most once per limiterIdle.
type LimiterPool struct {
	mu        sync.Mutex
	m         map[string]*limiterEntry
	rps       float64
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewLimiterPool(rps float64, burst int) *LimiterPool {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 5
	}
	return &LimiterPool{
		m:     make(map[string]*limiterEntry),
		rps:   rps,
		burst: burst,
		now:   time.Now,
	}
}

func (p *LimiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if now.Sub(p.lastSweep) >= limiterIdle {
		p.sweep(now)
	}

	if e, ok := p.m[key]; ok {
		e.seen = now
		return e.l
	}
	e := &limiterEntry{l: rate.NewLimiter(rate.Limit(p.rps), p.burst), seen: now}
	p.m[key] = e
	return e.l
}

// sweep must be called with mu held.
func (p *LimiterPool) sweep(now time.Time) {
	for key, e := range p.m {
		if now.Sub(e.seen) > limiterIdle {
			delete(p.m, key)
		}
	}
	p.lastSweep = now
}

func (p *LimiterPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.m)
}

func (p *LimiterPool) Allow(key string) bool {
	return p.get(key).Allow()
}

// LimitPath throttles requests to path per client IP and leaves the rest alone.
func (p *LimiterPool) LimitPath(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == path && !p.Allow(clientIP(r)) {
				writeError(w, "too many attempts, try again later", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
