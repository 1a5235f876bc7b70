package desktopapi

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/protobuf/encoding/protowire"
)

// Client is the API consumer's side of a connection. The generated
// Send<Name>Request methods issue requests and wait for the host's answer.
type Client struct {
	conn    *connection
	opts    options
	tracer  trace.Tracer
	metrics *Metrics

	nextID  atomic.Int64
	mu      sync.Mutex
	pending map[int64]chan serverMessage
}

// NewClient starts reading host messages from t.
func NewClient(t Transport, opts ...Option) *Client {
	o := newOptions(opts)
	c := &Client{
		opts:    o,
		tracer:  o.tracer(),
		metrics: o.metrics,
		pending: make(map[int64]chan serverMessage),
	}
	c.conn = newConnection(t, o.logger.With().Str("role", roleClient).Logger())
	c.conn.start(c.handle)
	return c
}

// Done is closed once the connection ends, by Close or by the peer.
func (c *Client) Done() <-chan struct{} { return c.conn.done }

// Close closes the transport. Outstanding requests fail with ErrConnectionClosed.
func (c *Client) Close() error { return c.conn.close() }

func (c *Client) handle(b []byte) {
	msg, err := envelope.decodeServer(b)
	if err != nil {
		c.conn.log.Warn().Err(err).Msg("dropping malformed host message")
		return
	}
	if !msg.hasID {
		c.conn.log.Debug().Int32("field", int32(msg.field)).Msg("dropping host message without id")
		return
	}
	c.mu.Lock()
	ch := c.pending[msg.id]
	delete(c.pending, msg.id)
	c.mu.Unlock()
	if ch == nil {
		c.conn.log.Warn().Int64("id", msg.id).Msg("response for unknown request id")
		return
	}
	ch <- msg
}

func (c *Client) forget(id int64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// sendRequest runs one request. want is the server envelope field that
// answers it: a response kind, or the success field when resp is nil.
func (c *Client) sendRequest(ctx context.Context, kind RequestKind, req message, want protowire.Number, resp message) (err error) {
	ctx, span := c.tracer.Start(ctx, "desktopapi.client/"+kind.String(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("desktopapi.kind", kind.String())),
	)
	finish := c.metrics.begin(roleClient, kind)
	defer func() {
		finish(outcomeOf(err))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	payload, err := marshalMessage(req)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", kind, err)
	}
	id := c.nextID.Add(1)
	span.SetAttributes(attribute.Int64("desktopapi.id", id))

	ch := make(chan serverMessage, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()

	frame := envelope.encodeClient(clientMessage{id: id, hasID: true, kind: kind, payload: payload})
	if err := c.conn.write(ctx, frame); err != nil {
		c.forget(id)
		return fmt.Errorf("send %s request: %w", kind, err)
	}

	select {
	case msg := <-ch:
		return readResponse(kind, msg, want, resp)
	case <-ctx.Done():
		c.forget(id)
		return fmt.Errorf("%s request: %w", kind, ctx.Err())
	case <-c.conn.done:
		c.forget(id)
		// the answer may have landed just before the connection closed
		select {
		case msg := <-ch:
			return readResponse(kind, msg, want, resp)
		default:
		}
		return fmt.Errorf("%s request: %w", kind, ErrConnectionClosed)
	}
}

func readResponse(kind RequestKind, msg serverMessage, want protowire.Number, resp message) error {
	switch {
	case msg.field == envelope.Error:
		return &RequestError{Kind: kind, Message: msg.errMsg}
	case msg.field != want:
		return &UnexpectedResponseError{Kind: kind, Got: msg.field, Want: want, Value: msg.success}
	case resp == nil:
		if !msg.success {
			return &UnexpectedResponseError{Kind: kind, Got: msg.field, Want: want}
		}
		return nil
	}
	if err := unmarshalMessage(msg.payload, resp); err != nil {
		return fmt.Errorf("decode %s response: %w", kind, err)
	}
	return nil
}
