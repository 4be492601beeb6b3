package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const KeyLogger key = "logger"

const AuthCookieName = "auth_token"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Service   Service
	Platform  Platform
	Store     Store
	Postgres  Postgres
	Logger    Logger
	Chat      Chat
	Responder Responder
	Auth      Auth
	RSS       RSS
	Bark      Bark
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"ai-chat"`
	Port string `env:"SERVICE_PORT" env-default:"3000"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Store struct {
	Driver string `env:"STORE_DRIVER" env-default:"postgres"`
}

type Postgres struct {
	URL         string `env:"POSTGRES_URL"`
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	Host        string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port        string `env:"POSTGRES_PORT" env-default:"5432"`
	AutoMigrate bool   `env:"POSTGRES_AUTO_MIGRATE" env-default:"true"`
}

// DSN prefers POSTGRES_URL and falls back to the discrete settings.
func (p Postgres) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		p.User, p.Password, p.Database, p.Host, p.Port)
}

type Logger struct {
	Level   string `env:"LOG_LEVEL" env-default:"info"`
	Console bool   `env:"LOG_CONSOLE" env-default:"true"`
}

// Chat holds the knobs of the message pipeline. The two context limits
// differ on purpose: streaming replies see a short window, batch replies a
// longer one.
type Chat struct {
	StreamContextLimit int           `env:"CHAT_STREAM_CONTEXT_LIMIT" env-default:"5"`
	BatchContextLimit  int           `env:"CHAT_BATCH_CONTEXT_LIMIT" env-default:"20"`
	QuotePreviewRunes  int           `env:"CHAT_QUOTE_PREVIEW_RUNES" env-default:"100"`
	UserName           string        `env:"CHAT_USER_NAME" env-default:"Me"`
	MentionPunctuation string        `env:"CHAT_MENTION_PUNCTUATION" env-default:"，。！？、"`
	PlaceholderFlush   time.Duration `env:"CHAT_PLACEHOLDER_FLUSH" env-default:"300ms"`
	EventBuffer        int           `env:"CHAT_EVENT_BUFFER" env-default:"64"`
}

type Responder struct {
	Timeout        time.Duration `env:"RESPONDER_TIMEOUT" env-default:"2m"`
	DefaultBaseURL string        `env:"RESPONDER_DEFAULT_BASE_URL" env-default:"https://api.openai.com/v1"`
}

type Auth struct {
	Password     string        `env:"AUTH_PASSWORD"`
	Secret       string        `env:"AUTH_SECRET"`
	CookieTTL    time.Duration `env:"AUTH_COOKIE_TTL" env-default:"168h"`
	CookieSecure bool          `env:"AUTH_COOKIE_SECURE" env-default:"false"`
	VerifyRPS    float64       `env:"AUTH_VERIFY_RPS" env-default:"1"`
	VerifyBurst  int           `env:"AUTH_VERIFY_BURST" env-default:"5"`
}

type RSS struct {
	Enabled      bool          `env:"RSS_ENABLED" env-default:"true"`
	Schedule     string        `env:"RSS_SCHEDULE" env-default:"*/30 * * * *"`
	CronSecret   string        `env:"CRON_SECRET"`
	FetchTimeout time.Duration `env:"RSS_FETCH_TIMEOUT" env-default:"30s"`
	InitialItems int           `env:"RSS_INITIAL_ITEMS" env-default:"5"`
}

type Bark struct {
	Timeout    time.Duration `env:"BARK_TIMEOUT" env-default:"10s"`
	RatePerSec float64       `env:"BARK_RATE_PER_SEC" env-default:"1"`
	Burst      int           `env:"BARK_BURST" env-default:"5"`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// Load reads .env.local and .env when present, then the process environment.
func Load() (*Config, error) {
	for _, file := range []string{".env.local", ".env"} {
		_ = godotenv.Load(file)
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Chat.StreamContextLimit <= 0 || c.Chat.BatchContextLimit <= 0 {
		return errors.New("chat context limits must be positive")
	}

	if c.Auth.Password != "" && c.Auth.Secret == "" {
		return errors.New("AUTH_SECRET is required when AUTH_PASSWORD is set")
	}

	return nil
}
