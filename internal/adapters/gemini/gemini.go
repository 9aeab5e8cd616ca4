// Package gemini provides the Google Gemini chat adapter.
// Clean Architecture: Adapter implementing ports.ChatModel and ports.ChatSession.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/svpcet/campus-compass/internal/domain/ports"
)

const defaultModel = "gemini-2.0-flash-001"

// Model implements ports.ChatModel using the Gemini API.
// Every chat it opens is constrained to the navigation reply schema.
type Model struct {
	client *genai.Client
	model  string
}

// New creates a Gemini chat model adapter.
func New(ctx context.Context, apiKey, model string) (*Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Model{client: client, model: model}, nil
}

// StartChat opens a new session seeded with the grounding instruction.
// The model holds the conversation history server-side; the returned session
// only ever forwards the latest user message.
func (m *Model) StartChat(ctx context.Context, instruction string) (ports.ChatSession, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens:   3000,
		Temperature:       genai.Ptr[float32](0),
		TopP:              genai.Ptr[float32](0.95),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    navigationResponseSchema(),
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		SafetySettings:    safetySettings(),
	}

	chat, err := m.client.Chats.Create(ctx, m.model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("creating chat: %w", err)
	}

	return &chatSession{chat: chat}, nil
}

// chatSession wraps one live genai chat.
type chatSession struct {
	chat *genai.Chat
}

// Send forwards one user message and extracts the reply text.
func (s *chatSession) Send(ctx context.Context, message string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("sending message: %w", err)
	}
	return extractText(resp)
}

// extractText pulls the first candidate's first text part out of the
// response envelope.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ports.ErrEmptyModelReply
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return "", ports.ErrEmptyModelReply
	}
	text := content.Parts[0].Text
	if text == "" {
		return "", ports.ErrEmptyModelReply
	}
	return text, nil
}

// navigationResponseSchema is the fixed three-field reply contract.
func navigationResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Navigation reply: agent message, resolved destination, and final destination coordinates.",
		Properties: map[string]*genai.Schema{
			"agent_message": {
				Type:        genai.TypeString,
				Description: "The message from the agent providing navigation or clarification.",
			},
			"final_query": {
				Type:        genai.TypeString,
				Description: "The user's final resolved query, like the specific location they want to reach.",
			},
			"final_coordinates": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeNumber},
				Description: "The coordinates of the final destination in [longitude, latitude] format.",
			},
		},
		Required: []string{"agent_message", "final_query", "final_coordinates"},
	}
}

func safetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	}
}
