package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type StateBackend string

const (
	BackendFile   StateBackend = "file"
	BackendSQLite StateBackend = "sqlite"
	BackendMemory StateBackend = "memory"
)

type Config struct {
	BotToken    string `env:"BOT_TOKEN,required,notEmpty"`
	AdminUserID int64  `env:"ADMIN_USER"`

	// LLM settings
	LLMProvider      LLMProvider   `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string        `env:"OPENAI_BASE_URL"`
	OpenAIModel      string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken string        `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string        `env:"YANDEX_FOLDER_ID"`
	MaxTokens        int           `env:"LLM_MAX_TOKENS" envDefault:"1000"`
	Temperature      float32       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	LLMTimeout       time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`

	// User state
	HistoryLimit  int          `env:"HISTORY_LIMIT" envDefault:"20"`
	StateBackend  StateBackend `env:"STATE_BACKEND" envDefault:"file"`
	StateFilePath string       `env:"STATE_FILE_PATH" envDefault:"data/user_data.json"`
	StateDBPath   string       `env:"STATE_DB_PATH" envDefault:"data/state.db"`

	// Interaction log
	LogFilePath string `env:"LOG_FILE_PATH" envDefault:"logs/log.jsonl"`

	// Scheduled jobs (UTC)
	ReportSchedule   string `env:"REPORT_SCHEDULE" envDefault:"0 21 * * *"`
	SnapshotSchedule string `env:"SNAPSHOT_SCHEDULE" envDefault:"@every 10m"`

	MaxConcurrentUpdates int64 `env:"MAX_CONCURRENT_UPDATES" envDefault:"4"`

	// Error reporting (optional)
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
