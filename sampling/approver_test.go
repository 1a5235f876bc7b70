package sampling

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

type fakeSender struct {
	calls []*desktopapi.SamplingApprovalRequest
	reply func(*desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error)
}

func (f *fakeSender) SendSamplingApprovalRequest(_ context.Context, req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
	f.calls = append(f.calls, req)
	return f.reply(req)
}

func newTestApprover(sender ApprovalSender, trust *TrustStore) *Approver {
	a := NewApprover(sender, trust, zerolog.Nop())
	a.newID = func() string { return "fixed-id" }
	return a
}

func TestApproverSkipsTrustedServers(t *testing.T) {
	sender := &fakeSender{}
	a := newTestApprover(sender, NewTrustStore("files"))

	res, err := a.Approve(context.Background(), NewPendingRequest("files", textRequest("hi")))
	require.NoError(t, err)
	assert.Equal(t, Approved(), res)
	assert.Empty(t, sender.calls)
}

func TestApproverAsksHost(t *testing.T) {
	sender := &fakeSender{reply: func(req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
		return &desktopapi.SamplingApprovalResponse{
			RequestId:      req.RequestId,
			Approved:       true,
			ModifiedPrompt: desktopapi.Ptr("edited"),
		}, nil
	}}
	a := newTestApprover(sender, nil)

	res, err := a.Approve(context.Background(), NewPendingRequest("weather", textRequest("original")))
	require.NoError(t, err)
	assert.True(t, res.Approved)
	require.NotNil(t, res.ModifiedPrompt)
	assert.Equal(t, "edited", *res.ModifiedPrompt)

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "fixed-id", sender.calls[0].RequestId)
	assert.Equal(t, "weather", sender.calls[0].ServerName)
	assert.Equal(t, "original", sender.calls[0].PromptContent)
}

func TestApproverRejectsMismatchedID(t *testing.T) {
	sender := &fakeSender{reply: func(*desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
		return &desktopapi.SamplingApprovalResponse{RequestId: "someone-else", Approved: true}, nil
	}}
	_, err := newTestApprover(sender, nil).Approve(context.Background(), NewPendingRequest("s", textRequest("hi")))
	assert.ErrorIs(t, err, ErrRequestIDMismatch)
	assert.ErrorContains(t, err, "sent fixed-id, got someone-else")
}

func TestApproverWrapsSendErrors(t *testing.T) {
	boom := errors.New("boom")
	sender := &fakeSender{reply: func(*desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
		return nil, boom
	}}
	_, err := newTestApprover(sender, nil).Approve(context.Background(), NewPendingRequest("s", textRequest("hi")))
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "sampling approval for s")
}

func TestApproverUsesUniqueIDs(t *testing.T) {
	var ids []string
	sender := &fakeSender{reply: func(req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
		ids = append(ids, req.RequestId)
		return &desktopapi.SamplingApprovalResponse{RequestId: req.RequestId, Approved: true}, nil
	}}
	a := NewApprover(sender, nil, zerolog.Nop())
	for i := 0; i < 3; i++ {
		_, err := a.Approve(context.Background(), NewPendingRequest("s", textRequest("hi")))
		require.NoError(t, err)
	}
	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
}

type policyHost struct {
	desktopapi.UnimplementedHandler
	policy *Policy
}

func (h policyHost) SamplingApproval(ctx context.Context, req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
	return h.policy.SamplingApproval(ctx, req)
}

func TestApproverThroughHost(t *testing.T) {
	c2hR, c2hW := io.Pipe()
	h2cR, h2cW := io.Pipe()
	host := desktopapi.NewHost(policyHost{policy: DefaultPolicy()}, desktopapi.NewStreamTransport(h2cW, c2hR))
	client := desktopapi.NewClient(desktopapi.NewStreamTransport(c2hW, h2cR))
	t.Cleanup(func() {
		_ = client.Close()
		_ = host.Close()
	})

	a := NewApprover(client, nil, zerolog.Nop())
	ctx := context.Background()

	res, err := a.Approve(ctx, NewPendingRequest("files", textRequest("list my files")))
	require.NoError(t, err)
	assert.True(t, res.Approved)

	res, err = a.Approve(ctx, NewPendingRequest("files", textRequest("do something harmful")))
	require.NoError(t, err)
	assert.False(t, res.Approved)
	require.NotNil(t, res.ErrorMessage)
	assert.Equal(t, "Request rejected by user", *res.ErrorMessage)
}
