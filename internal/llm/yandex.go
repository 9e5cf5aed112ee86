package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Morwran/yagpt"
)

type YandexClient struct {
	ya       yagpt.YaGPTFace
	iamToken string
}

func NewYandex(oauthToken, folderID string) (*YandexClient, error) {
	// Create IAM token from OAuth token
	iam, err := yagpt.NewYaIam(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init yandex iam: %w", err)
	}
	resp, err := iam.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create iam token: %w", err)
	}

	// Create YaGPT client for a folder
	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to init yagpt: %w", err)
	}

	return &YandexClient{
		ya:       ya,
		iamToken: resp.IamToken,
	}, nil
}

func (c *YandexClient) Generate(ctx context.Context, req Request) (Response, error) {
	var messages []yagpt.Message
	if req.SystemPrompt != "" {
		messages = append(messages, yagpt.Message{Role: "system", Content: req.SystemPrompt})
	}
	for _, m := range req.Context {
		messages = append(messages, yagpt.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, yagpt.Message{Role: "user", Content: flattenQuery(req)})

	resp, err := c.ya.CompletionWithCtx(ctx, c.iamToken, messages)
	if err != nil {
		return Response{}, fmt.Errorf("yagpt completion failed: %w", err)
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return Response{}, fmt.Errorf("yagpt returned empty response")
	}
	out := Response{Content: resp.Alternatives[0].Message.Content, Model: yagpt.YaModelLite}
	out.PromptTokens = int(resp.Usage.InputTextTokens)
	out.CompletionTokens = int(resp.Usage.CompletionTokens)
	out.TotalTokens = int(resp.Usage.TotalTokens)
	return out, nil
}

// flattenQuery renders the query as plain text in the same order the vision
// parts would take: caption, image URL, message text. YandexGPT has no image
// input, so the URL is passed through as a line of text.
func flattenQuery(req Request) string {
	if req.Vision == nil {
		return req.UserText
	}
	var lines []string
	if t := strings.TrimSpace(req.Vision.Text); t != "" {
		lines = append(lines, t)
	}
	lines = append(lines, req.Vision.ImageURL)
	if t := strings.TrimSpace(req.UserText); t != "" {
		lines = append(lines, t)
	}
	return strings.Join(lines, "\n")
}
