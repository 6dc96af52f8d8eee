package services

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const disabledNotice = "AI features are not configured. Set OPENAI_API_KEY to enable analysis and drafting."

// AIService wraps the OpenAI client. If client is nil, the AI features
// degrade to a static notice instead of failing.
type AIService struct {
	client *openai.Client
}

// NewAIService creates the service. Pass an empty apiKey to disable calls.
func NewAIService(apiKey string) *AIService {
	if apiKey == "" {
		return &AIService{client: nil}
	}
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &AIService{client: &c}
}

// AnalyzeTicket asks the model for a short facility-manager assessment
// of a maintenance ticket: estimated priority, recommended professional
// and a suggested reply to the tenant.
func (s *AIService) AnalyzeTicket(ctx context.Context, title, description string) (string, error) {
	if s.client == nil {
		return disabledNotice, nil
	}

	prompt := fmt.Sprintf(`You are an expert facility manager. Analyze this maintenance ticket.

Ticket Title: %s
Description: %s

Please provide a brief, structured analysis including:
1. Estimated Priority (Low/Medium/High/Emergency)
2. Recommended Professional (e.g., Electrician, Plumber)
3. A suggested polite response to the tenant.

Keep the output concise (under 150 words).`, title, description)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// DraftComunicazione writes an announcement about the topic in the
// requested tone (formal, friendly or urgent), returning a ready-to-
// send title and body.
func (s *AIService) DraftComunicazione(ctx context.Context, topic, tone string) (title, content string, err error) {
	if s.client == nil {
		return "Bozza non disponibile", disabledNotice, nil
	}

	prompt := fmt.Sprintf(`Write a condominium announcement about: "%s".
Tone: %s.

Return the result in JSON format with keys "title" and "content".
The content should be clear, professional, and ready to send.`, topic, tone)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", "", fmt.Errorf("openai: empty completion")
	}

	var draft struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &draft); err != nil {
		return "", "", fmt.Errorf("openai: malformed draft payload: %w", err)
	}
	return draft.Title, draft.Content, nil
}
