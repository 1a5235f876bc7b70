package sampling

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

type recordingSampler struct {
	prompt string
	err    error
}

func (s *recordingSampler) Sample(ctx context.Context, prompt string, req *CreateMessageRequest) (*CreateMessageResult, error) {
	s.prompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	return PlaceholderSampler{}.Sample(ctx, prompt, req)
}

func replying(resp *desktopapi.SamplingApprovalResponse, err error) *fakeSender {
	return &fakeSender{reply: func(req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
		if resp != nil {
			resp.RequestId = req.RequestId
		}
		return resp, err
	}}
}

const helloParams = `{"messages": [{"role": "user", "content": {"type": "text", "text": "hello"}}]}`

func TestHandleCreateMessage(t *testing.T) {
	tests := []struct {
		name       string
		params     string
		sender     *fakeSender
		noApprover bool
		samplerErr error
		wantCode   int
		wantMsg    string
		wantPrompt string
	}{
		{
			name:       "no approver configured",
			params:     helloParams,
			noApprover: true,
			wantCode:   CodeMethodNotFound,
			wantMsg:    "Sampling requests not supported in this configuration",
		},
		{
			name:     "invalid params",
			params:   `{"messages": 5}`,
			sender:   replying(nil, nil),
			wantCode: CodeInvalidParams,
			wantMsg:  "Invalid sampling request: ",
		},
		{
			name:     "rejected with reason",
			params:   helloParams,
			sender:   replying(&desktopapi.SamplingApprovalResponse{ErrorMessage: desktopapi.Ptr("too long")}, nil),
			wantCode: CodeRejected,
			wantMsg:  "too long",
		},
		{
			name:     "rejected without reason",
			params:   helloParams,
			sender:   replying(&desktopapi.SamplingApprovalResponse{}, nil),
			wantCode: CodeRejected,
			wantMsg:  "User rejected sampling request",
		},
		{
			name:     "approval transport failure",
			params:   helloParams,
			sender:   replying(nil, desktopapi.ErrConnectionClosed),
			wantCode: CodeInternal,
			wantMsg:  "Internal error: ",
		},
		{
			name:       "sampler failure",
			params:     helloParams,
			sender:     replying(&desktopapi.SamplingApprovalResponse{Approved: true}, nil),
			samplerErr: errors.New("model unavailable"),
			wantCode:   CodeInternal,
			wantMsg:    "Internal error: model unavailable",
			wantPrompt: "hello",
		},
		{
			name:       "approved",
			params:     helloParams,
			sender:     replying(&desktopapi.SamplingApprovalResponse{Approved: true}, nil),
			wantPrompt: "hello",
		},
		{
			name:       "approved with modified prompt",
			params:     helloParams,
			sender:     replying(&desktopapi.SamplingApprovalResponse{Approved: true, ModifiedPrompt: desktopapi.Ptr("hello, politely")}, nil),
			wantPrompt: "hello, politely",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := &recordingSampler{err: tt.samplerErr}
			h := &Handler{Sampler: sampler, Log: zerolog.Nop()}
			if !tt.noApprover {
				h.Approver = newTestApprover(tt.sender, nil)
			}
			out, rpcErr := h.HandleCreateMessage(context.Background(), "files", json.RawMessage(tt.params))
			assert.Equal(t, tt.wantPrompt, sampler.prompt)
			if tt.wantCode != 0 {
				require.NotNil(t, rpcErr)
				assert.Nil(t, out)
				assert.Equal(t, tt.wantCode, rpcErr.Code)
				assert.Contains(t, rpcErr.Message, tt.wantMsg)
				return
			}
			require.Nil(t, rpcErr)
			assert.Equal(t, "Placeholder response to: "+tt.wantPrompt+" (model: default-model)", out.Content.Text)
		})
	}
}

func TestRPCErrorJSON(t *testing.T) {
	err := &RPCError{Code: CodeRejected, Message: "no"}
	b, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code": -32000, "message": "no"}`, string(b))
	assert.Equal(t, "code -32000: no", err.Error())
}
