package desktopapi

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// connection owns a transport's receive loop and its lifetime. Client and
// Host each wrap one and supply the handler for inbound envelopes.
type connection struct {
	t   Transport
	log zerolog.Logger

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

func newConnection(t Transport, log zerolog.Logger) *connection {
	return &connection{
		t:    t,
		log:  log,
		done: make(chan struct{}),
	}
}

// start runs the receive loop. It is separate from newConnection so the
// owner is fully built before the first message is handled.
func (c *connection) start(handle func([]byte)) {
	go c.receive(handle)
}

func (c *connection) receive(handle func([]byte)) {
	for {
		msg, err := c.t.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			default:
				if expectedClose(err) {
					c.log.Debug().Msg("peer closed connection")
				} else {
					c.log.Warn().Err(err).Msg("receive failed; closing connection")
				}
			}
			_ = c.close()
			return
		}
		handle(msg)
	}
}

func expectedClose(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

func (c *connection) write(ctx context.Context, msg []byte) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}
	return c.t.WriteMessage(ctx, msg)
}

func (c *connection) close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.closeErr = c.t.Close()
	})
	return c.closeErr
}
