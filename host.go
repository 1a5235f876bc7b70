package desktopapi

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
	"google.golang.org/protobuf/encoding/protowire"
)

// Host is the desktop side of a connection. It decodes client requests,
// calls the matching Handler method, and writes back the response, a success
// acknowledgement, or the handler's error.
type Host struct {
	conn    *connection
	handler Handler
	sem     *semaphore.Weighted
	tracer  trace.Tracer
	metrics *Metrics

	// canceled when the connection ends; parent of every handler context
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHost serves handler over t. Requests are handled concurrently, at most
// DefaultMaxConcurrency at a time unless WithMaxConcurrency says otherwise.
func NewHost(handler Handler, t Transport, opts ...Option) *Host {
	o := newOptions(opts)
	ctx, cancel := context.WithCancel(context.Background())
	h := &Host{
		handler: handler,
		sem:     semaphore.NewWeighted(o.maxConcurrency),
		tracer:  o.tracer(),
		metrics: o.metrics,
		ctx:     ctx,
		cancel:  cancel,
	}
	h.conn = newConnection(t, o.logger.With().Str("role", roleHost).Logger())
	go func() {
		<-h.conn.done
		cancel()
	}()
	h.conn.start(h.handle)
	return h
}

// Done is closed once the connection ends, by Close or by the peer.
func (h *Host) Done() <-chan struct{} { return h.conn.done }

// Close closes the transport and cancels in-flight handler contexts.
func (h *Host) Close() error {
	h.cancel()
	return h.conn.close()
}

func (h *Host) handle(b []byte) {
	msg, err := envelope.decodeClient(b)
	if err != nil {
		h.conn.log.Warn().Err(err).Msg("malformed client message")
		if msg.hasID {
			h.reply(serverMessage{id: msg.id, hasID: true, field: envelope.Error, errMsg: err.Error()})
		}
		return
	}
	// Blocking here stops reading until a slot frees up.
	if err := h.sem.Acquire(h.ctx, 1); err != nil {
		return
	}
	go func() {
		defer h.sem.Release(1)
		h.serve(msg)
	}()
}

func (h *Host) serve(msg clientMessage) {
	ctx, span := h.tracer.Start(h.ctx, "desktopapi.host/"+msg.kind.String(),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("desktopapi.kind", msg.kind.String()),
			attribute.Int64("desktopapi.id", msg.id),
		),
	)
	defer span.End()
	finish := h.metrics.begin(roleHost, msg.kind)

	field, resp, err := h.safeDispatch(ctx, msg.kind, msg.payload)
	var pe *panicError
	switch {
	case errors.As(err, &pe):
		finish(OutcomePanic)
	case err != nil:
		finish(OutcomeError)
	default:
		finish(OutcomeOK)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.conn.log.Debug().Err(err).Stringer("kind", msg.kind).Int64("id", msg.id).Msg("request failed")
	}

	if !msg.hasID {
		return
	}
	out := serverMessage{id: msg.id, hasID: true}
	switch {
	case err != nil:
		out.field, out.errMsg = envelope.Error, err.Error()
	case field == envelope.Success:
		out.field, out.success = field, true
	default:
		out.field, out.payload = field, resp.appendFields(nil)
	}
	h.reply(out)
}

type panicError struct {
	kind  RequestKind
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("%s handler panicked: %v", e.kind, e.value)
}

func (h *Host) safeDispatch(ctx context.Context, kind RequestKind, payload []byte) (field protowire.Number, resp message, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.conn.log.Error().Stringer("kind", kind).Interface("panic", r).Msg("handler panicked")
			field, resp, err = 0, nil, &panicError{kind: kind, value: r}
		}
	}()
	return h.dispatch(ctx, kind, payload)
}

func (h *Host) reply(m serverMessage) {
	if err := h.conn.write(h.ctx, envelope.encodeServer(m)); err != nil {
		h.conn.log.Debug().Err(err).Int64("id", m.id).Msg("reply not sent")
	}
}
