package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const maxTokens = 4096

// OpenAIProvider implements the Provider interface on the chat
// completions API, with photos passed as data-URL image parts.
type OpenAIProvider struct {
	Model string
}

var _ Provider = (*OpenAIProvider)(nil)

func (p *OpenAIProvider) GenerateResponse(ctx context.Context, req Request) (*Result, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	client := openai.NewClient(apiKey)

	model := p.Model
	if model == "" {
		model = openai.GPT4o
	}
	if val, ok := req.Options["model"].(string); ok && val != "" {
		model = val
	}

	userParts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
	}
	for _, photo := range req.Photos {
		userParts = append(userParts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", photo.MimeType, photo.Base64Data),
			},
		})
	}

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, MultiContent: userParts},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		chatReq.MaxCompletionTokens = maxTokens
	} else {
		chatReq.MaxTokens = maxTokens
	}

	resp, err := client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return &Result{Text: resp.Choices[0].Message.Content}, nil
}

func (p *OpenAIProvider) AdaptInstructions(raw string) string {
	return raw
}
