package llm

import (
	"fmt"
	"log"
	"strings"

	"goal-chatter/internal/config"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// Factory creates LLM clients with consistent logic
type Factory struct {
	OpenaiAPIKey     string
	OpenaiBaseURL    string
	OpenaiModel      string
	MaxTokens        int
	Temperature      float32
	YandexOAuthToken string
	YandexFolderID   string
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		OpenaiAPIKey:     cfg.OpenAIAPIKey,
		OpenaiBaseURL:    cfg.OpenAIBaseURL,
		OpenaiModel:      cfg.OpenAIModel,
		MaxTokens:        cfg.MaxTokens,
		Temperature:      cfg.Temperature,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
}

// CreateClient returns the client for provider. Missing credentials yield a
// NotConfigured client instead of an error so the bot can still start.
func (f *Factory) CreateClient(provider string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		if f.OpenaiAPIKey == "" {
			log.Println("⚠️ OPENAI_API_KEY is empty, completions are disabled")
			return NotConfigured{}, nil
		}
		return NewOpenAI(OpenAIOptions{
			APIKey:      f.OpenaiAPIKey,
			BaseURL:     f.OpenaiBaseURL,
			Model:       f.OpenaiModel,
			MaxTokens:   f.MaxTokens,
			Temperature: f.Temperature,
		}), nil
	case ProviderYandex:
		if f.YandexOAuthToken == "" || f.YandexFolderID == "" {
			log.Println("⚠️ Yandex credentials are empty, completions are disabled")
			return NotConfigured{}, nil
		}
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
