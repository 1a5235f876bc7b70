package sampling

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// JSON-RPC error codes returned by HandleCreateMessage.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeRejected       = -32000
	CodeInternal       = -32603
)

// RPCError is a JSON-RPC error object for the MCP server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}

// Handler serves sampling/createMessage calls from MCP servers.
type Handler struct {
	Approver *Approver
	Sampler  Sampler
	Log      zerolog.Logger
}

// HandleCreateMessage parses params, obtains approval, and runs the
// (possibly modified) prompt through the sampler. A Handler without an
// Approver answers every call with CodeMethodNotFound.
func (h *Handler) HandleCreateMessage(ctx context.Context, server string, params json.RawMessage) (*CreateMessageResult, *RPCError) {
	if h.Approver == nil {
		h.Log.Warn().Str("server", server).Msg("sampling request without an approver")
		return nil, &RPCError{Code: CodeMethodNotFound, Message: "Sampling requests not supported in this configuration"}
	}
	var req CreateMessageRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, &RPCError{Code: CodeInvalidParams, Message: "Invalid sampling request: " + err.Error()}
	}
	h.Log.Info().Str("server", server).Msg("received sampling request")

	pending := NewPendingRequest(server, &req)
	res, err := h.Approver.Approve(ctx, pending)
	if err != nil {
		h.Log.Error().Err(err).Str("server", server).Msg("sampling approval failed")
		return nil, &RPCError{Code: CodeInternal, Message: "Internal error: " + err.Error()}
	}
	if !res.Approved {
		msg := "User rejected sampling request"
		if res.ErrorMessage != nil {
			msg = *res.ErrorMessage
		}
		h.Log.Info().Str("server", server).Msg("sampling request rejected")
		return nil, &RPCError{Code: CodeRejected, Message: msg}
	}

	prompt := pending.PromptContent
	if res.ModifiedPrompt != nil {
		prompt = *res.ModifiedPrompt
	}
	out, err := h.Sampler.Sample(ctx, prompt, &req)
	if err != nil {
		h.Log.Error().Err(err).Str("server", server).Msg("sampling call failed")
		return nil, &RPCError{Code: CodeInternal, Message: "Internal error: " + err.Error()}
	}
	return out, nil
}
