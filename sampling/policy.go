package sampling

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

// Policy decides sampling approvals on the host. It stands in for an
// interactive dialog: prompts that are too long or mention a blocked word
// are rejected.
type Policy struct {
	// MaxPromptLen is the exclusive upper bound on prompt length in bytes.
	// Zero or negative means no limit.
	MaxPromptLen int
	// BlockedWords are matched case-insensitively against the prompt.
	BlockedWords []string
	// RejectMessage is reported to the caller on rejection.
	RejectMessage string
	// Delay simulates the time a user takes to answer.
	Delay time.Duration

	Log zerolog.Logger
}

// DefaultPolicy rejects prompts of 2000 bytes or more and prompts that
// mention "harmful".
func DefaultPolicy() *Policy {
	return &Policy{
		MaxPromptLen:  2000,
		BlockedWords:  []string{"harmful"},
		RejectMessage: "Request rejected by user",
		Log:           zerolog.Nop(),
	}
}

// Evaluate applies the policy to a prompt.
func (p *Policy) Evaluate(prompt string) Result {
	if p.MaxPromptLen > 0 && len(prompt) >= p.MaxPromptLen {
		return Rejected(p.RejectMessage)
	}
	lower := strings.ToLower(prompt)
	for _, w := range p.BlockedWords {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return Rejected(p.RejectMessage)
		}
	}
	return Approved()
}

// SamplingApproval answers a desktopapi SamplingApprovalRequest. Hosts call
// it from their desktopapi.Handler.
func (p *Policy) SamplingApproval(ctx context.Context, req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
	p.Log.Info().Str("server", req.ServerName).Str("request_id", req.RequestId).Msg("sampling approval requested")
	if p.Delay > 0 {
		t := time.NewTimer(p.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	res := p.Evaluate(req.PromptContent)
	p.Log.Info().Str("server", req.ServerName).Bool("approved", res.Approved).Msg("sampling approval decided")
	return &desktopapi.SamplingApprovalResponse{
		RequestId:      req.RequestId,
		Approved:       res.Approved,
		ModifiedPrompt: res.ModifiedPrompt,
		ErrorMessage:   res.ErrorMessage,
	}, nil
}
