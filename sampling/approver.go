package sampling

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

// ErrRequestIDMismatch means the host answered an approval request with a
// different request id.
var ErrRequestIDMismatch = errors.New("sampling: approval response for a different request")

// ApprovalSender is the part of *desktopapi.Client the Approver needs.
type ApprovalSender interface {
	SendSamplingApprovalRequest(ctx context.Context, req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error)
}

// Approver asks the desktop host to approve sampling requests from servers
// that are not trusted.
type Approver struct {
	sender ApprovalSender
	trust  *TrustStore
	log    zerolog.Logger
	newID  func() string
}

// NewApprover sends approval requests through sender. trust may be nil.
func NewApprover(sender ApprovalSender, trust *TrustStore, log zerolog.Logger) *Approver {
	return &Approver{
		sender: sender,
		trust:  trust,
		log:    log,
		newID:  uuid.NewString,
	}
}

// Approve returns the decision for p. Requests from trusted servers are
// approved without contacting the host.
func (a *Approver) Approve(ctx context.Context, p *PendingRequest) (Result, error) {
	if !p.RequiresApproval(a.trust.List()) {
		a.log.Debug().Str("server", p.ServerName).Msg("trusted server; sampling approved")
		return Approved(), nil
	}
	id := a.newID()
	a.log.Info().Str("server", p.ServerName).Str("request_id", id).Msg("requesting sampling approval")
	resp, err := a.sender.SendSamplingApprovalRequest(ctx, p.ToProto(id))
	if err != nil {
		return Result{}, fmt.Errorf("sampling approval for %s: %w", p.ServerName, err)
	}
	if resp.RequestId != id {
		return Result{}, fmt.Errorf("%w: sent %s, got %s", ErrRequestIDMismatch, id, resp.RequestId)
	}
	return Result{
		Approved:       resp.Approved,
		ModifiedPrompt: resp.ModifiedPrompt,
		ErrorMessage:   resp.ErrorMessage,
	}, nil
}
