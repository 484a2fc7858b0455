package llm

import (
	"context"
	"fmt"

	"github.com/Morwran/yagpt"
)

// yandexCompletion is the part of a YandexGPT answer the bot uses. An empty
// Content means the model returned no alternatives.
type yandexCompletion struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type yandexCompleteFunc func(ctx context.Context, messages []yagpt.Message) (yandexCompletion, error)

type YandexClient struct {
	complete yandexCompleteFunc
}

func NewYandex(oauthToken, folderID string) (*YandexClient, error) {
	// Exchange OAuth token for an IAM token
	iam, err := yagpt.NewYaIam(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init yandex iam: %w", err)
	}
	iamResp, err := iam.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create iam token: %w", err)
	}
	iamToken := iamResp.IamToken

	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to init yagpt: %w", err)
	}

	return &YandexClient{complete: func(ctx context.Context, messages []yagpt.Message) (yandexCompletion, error) {
		resp, err := ya.CompletionWithCtx(ctx, iamToken, messages)
		if err != nil {
			return yandexCompletion{}, err
		}
		if resp == nil || len(resp.Alternatives) == 0 {
			return yandexCompletion{}, nil
		}
		return yandexCompletion{
			Content:          resp.Alternatives[0].Message.Content,
			PromptTokens:     int(resp.Usage.InputTextTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		}, nil
	}}, nil
}

// Generate sends the conversation to YandexGPT. Model, token and temperature
// settings are fixed by the folder deployment and ignored here.
func (c *YandexClient) Generate(ctx context.Context, req Request) (Response, error) {
	messages := make([]yagpt.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, yagpt.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := c.complete(ctx, messages)
	if err != nil {
		return Response{}, fmt.Errorf("yagpt completion failed: %w", err)
	}
	if resp.Content == "" {
		return Response{}, ErrEmptyResponse
	}
	return Response{
		Content:          resp.Content,
		Model:            yagpt.YaModelLite,
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
		TotalTokens:      resp.TotalTokens,
	}, nil
}
