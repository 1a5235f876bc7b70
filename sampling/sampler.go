package sampling

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Sampler runs an approved prompt against a model.
type Sampler interface {
	Sample(ctx context.Context, prompt string, req *CreateMessageRequest) (*CreateMessageResult, error)
}

const (
	defaultModel   = "default-model"
	stopEndTurn    = "endTurn"
	roleAssistant  = "assistant"
	defaultMaxToks = 1024
)

// PlaceholderSampler answers without calling a model. It echoes the prompt
// and names the first hinted model.
type PlaceholderSampler struct{}

func (PlaceholderSampler) Sample(_ context.Context, prompt string, req *CreateMessageRequest) (*CreateMessageResult, error) {
	model := req.firstHint()
	if model == "" {
		model = defaultModel
	}
	text := fmt.Sprintf("Placeholder response to: %s (model: %s)", prompt, model)
	return &CreateMessageResult{
		Role:       roleAssistant,
		Content:    TextContent(text),
		Model:      model,
		StopReason: stopEndTurn,
	}, nil
}

// AnthropicSampler sends prompts to the Anthropic Messages API.
type AnthropicSampler struct {
	client anthropic.Client
	// Model is used when the request carries no model hint.
	Model string
	// MaxTokens is used when the request does not set maxTokens.
	MaxTokens int64
}

func NewAnthropicSampler(model string, opts ...option.RequestOption) *AnthropicSampler {
	return &AnthropicSampler{
		client:    anthropic.NewClient(opts...),
		Model:     model,
		MaxTokens: defaultMaxToks,
	}
}

func (s *AnthropicSampler) Sample(ctx context.Context, prompt string, req *CreateMessageRequest) (*CreateMessageResult, error) {
	model := req.firstHint()
	if model == "" {
		model = s.Model
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: s.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if req.MaxTokens != nil {
		params.MaxTokens = int64(*req.MaxTokens)
	}
	if req.SystemPrompt != nil {
		params.System = []anthropic.TextBlockParam{{Text: *req.SystemPrompt, Type: "text"}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}
	if len(req.StopSequences) > 0 {
		params.StopSequences = req.StopSequences
	}

	msg, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			return &CreateMessageResult{
				Role:       roleAssistant,
				Content:    TextContent(block.Text),
				Model:      string(msg.Model),
				StopReason: stopReason(string(msg.StopReason)),
			}, nil
		}
	}
	return nil, errors.New("anthropic: no text content returned")
}

// stopReason maps Messages API stop reasons to MCP's camelCase names.
func stopReason(s string) string {
	switch s {
	case "end_turn":
		return stopEndTurn
	case "max_tokens":
		return "maxTokens"
	case "stop_sequence":
		return "stopSequence"
	}
	return s
}
