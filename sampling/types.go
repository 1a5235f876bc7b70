// Package sampling implements the approval flow for MCP sampling/createMessage
// requests: an MCP server asks the client to run an LLM call, the desktop host
// asks the user, and only approved prompts reach the model.
package sampling

import "encoding/json"

// Content types carried in a sampling message.
const (
	ContentText  = "text"
	ContentImage = "image"
)

// Message is one entry of a createMessage request.
type Message struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// Content is text or image content. Type selects which fields are set.
type Content struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// TextContent constructs a text content block.
func TextContent(text string) Content {
	return Content{Type: ContentText, Text: text}
}

// ImageContent constructs an inline image with base64-encoded data.
func ImageContent(data, mimeType string) Content {
	return Content{Type: ContentImage, Data: data, MimeType: mimeType}
}

type ModelHint struct {
	Name string `json:"name"`
}

type ModelPreferences struct {
	Hints                []ModelHint `json:"hints,omitempty"`
	CostPriority         *float64    `json:"costPriority,omitempty"`
	SpeedPriority        *float64    `json:"speedPriority,omitempty"`
	IntelligencePriority *float64    `json:"intelligencePriority,omitempty"`
}

// IncludeContext values as they appear in MCP requests.
const (
	IncludeNone       = "none"
	IncludeThisServer = "thisServer"
	IncludeAllServers = "allServers"
)

// CreateMessageRequest is the params object of sampling/createMessage.
type CreateMessageRequest struct {
	Messages         []Message         `json:"messages"`
	ModelPreferences *ModelPreferences `json:"modelPreferences,omitempty"`
	SystemPrompt     *string           `json:"systemPrompt,omitempty"`
	IncludeContext   *string           `json:"includeContext,omitempty"`
	Temperature      *float64          `json:"temperature,omitempty"`
	MaxTokens        *uint32           `json:"maxTokens,omitempty"`
	StopSequences    []string          `json:"stopSequences,omitempty"`
	Metadata         json.RawMessage   `json:"metadata,omitempty"`
}

// CreateMessageResult is the result object of sampling/createMessage.
type CreateMessageResult struct {
	Role       string  `json:"role"`
	Content    Content `json:"content"`
	Model      string  `json:"model"`
	StopReason string  `json:"stopReason"`
}

// firstHint returns the first model hint's name, or "".
func (r *CreateMessageRequest) firstHint() string {
	if r == nil || r.ModelPreferences == nil || len(r.ModelPreferences.Hints) == 0 {
		return ""
	}
	return r.ModelPreferences.Hints[0].Name
}
