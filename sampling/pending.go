package sampling

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

const (
	systemPromptPreview = 100
	promptPreview       = 200
)

// PendingRequest is a sampling request waiting for the user's decision.
type PendingRequest struct {
	ServerName       string
	PromptContent    string
	SystemPrompt     *string
	ModelPreferences *ModelPreferences
	MaxTokens        *uint32
	IncludeContext   *string
	Temperature      *float64
	StopSequences    []string
	Metadata         json.RawMessage
}

// NewPendingRequest flattens req's messages into a single prompt: text
// contents joined by newlines, images as a placeholder.
func NewPendingRequest(serverName string, req *CreateMessageRequest) *PendingRequest {
	parts := make([]string, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Content.Type {
		case ContentText:
			parts = append(parts, m.Content.Text)
		case ContentImage:
			parts = append(parts, "[Image content]")
		}
	}
	return &PendingRequest{
		ServerName:       serverName,
		PromptContent:    strings.Join(parts, "\n"),
		SystemPrompt:     req.SystemPrompt,
		ModelPreferences: req.ModelPreferences,
		MaxTokens:        req.MaxTokens,
		IncludeContext:   req.IncludeContext,
		Temperature:      req.Temperature,
		StopSequences:    req.StopSequences,
		Metadata:         req.Metadata,
	}
}

// Description is the text shown in the approval prompt.
func (p *PendingRequest) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MCP Server '%s' wants to make an LLM call", p.ServerName)
	if p.SystemPrompt != nil {
		b.WriteString("\nSystem prompt: ")
		b.WriteString(preview(*p.SystemPrompt, systemPromptPreview))
	}
	b.WriteString("\nPrompt: ")
	b.WriteString(preview(p.PromptContent, promptPreview))
	if p.MaxTokens != nil {
		fmt.Fprintf(&b, "\nMax tokens: %d", *p.MaxTokens)
	}
	if p.Temperature != nil {
		b.WriteString("\nTemperature: ")
		b.WriteString(strconv.FormatFloat(*p.Temperature, 'f', -1, 64))
	}
	return b.String()
}

// preview cuts s to n runes and marks the cut with "...".
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// RequiresApproval reports whether the user must be asked; requests from
// trusted servers are not.
func (p *PendingRequest) RequiresApproval(trusted []string) bool {
	return !slices.Contains(trusted, p.ServerName)
}

// ToProto builds the approval request sent to the desktop host.
func (p *PendingRequest) ToProto(requestID string) *desktopapi.SamplingApprovalRequest {
	req := &desktopapi.SamplingApprovalRequest{
		RequestId:      requestID,
		ServerName:     p.ServerName,
		PromptContent:  p.PromptContent,
		SystemPrompt:   p.SystemPrompt,
		MaxTokens:      p.MaxTokens,
		IncludeContext: includeContextProto(p.IncludeContext),
		Temperature:    p.Temperature,
		StopSequences:  p.StopSequences,
	}
	if prefs := p.ModelPreferences; prefs != nil {
		req.ModelPreferences = &desktopapi.ModelPreferences{
			CostPriority:         prefs.CostPriority,
			SpeedPriority:        prefs.SpeedPriority,
			IntelligencePriority: prefs.IntelligencePriority,
		}
		for _, h := range prefs.Hints {
			req.ModelPreferences.Hints = append(req.ModelPreferences.Hints, &desktopapi.ModelHint{Name: h.Name})
		}
	}
	if len(p.Metadata) > 0 {
		req.MetadataJson = desktopapi.Ptr(string(p.Metadata))
	}
	return req
}

func includeContextProto(v *string) desktopapi.IncludeContext {
	if v == nil {
		return desktopapi.IncludeContextUnspecified
	}
	switch *v {
	case IncludeNone:
		return desktopapi.IncludeContextNone
	case IncludeThisServer:
		return desktopapi.IncludeContextThisServer
	case IncludeAllServers:
		return desktopapi.IncludeContextAllServers
	}
	return desktopapi.IncludeContextUnspecified
}

// Result is the user's decision on a PendingRequest.
type Result struct {
	Approved       bool
	ModifiedPrompt *string
	ErrorMessage   *string
}

// Approved is an approval without changes.
func Approved() Result {
	return Result{Approved: true}
}

// Rejected is a rejection carrying reason.
func Rejected(reason string) Result {
	return Result{ErrorMessage: &reason}
}
