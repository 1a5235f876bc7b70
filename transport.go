package desktopapi

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// Transport moves whole serialized envelopes between the two sides. Only one
// goroutine calls ReadMessage; WriteMessage may be called concurrently.
type Transport interface {
	ReadMessage() ([]byte, error)
	WriteMessage(ctx context.Context, msg []byte) error
	Close() error
}

// DefaultMaxMessageSize bounds a single frame in either direction.
const DefaultMaxMessageSize = 8 << 20

var (
	ErrEmptyFrame    = errors.New("desktopapi: empty frame")
	ErrFrameTooLarge = errors.New("desktopapi: frame exceeds size limit")
)

// StreamTransport frames envelopes with a 4-byte big-endian length prefix
// over a byte stream such as a pipe, a socket, or a child's stdio.
type StreamTransport struct {
	w   io.Writer
	r   *bufio.Reader
	max int

	wmu       sync.Mutex
	closers   []io.Closer
	closeOnce sync.Once
	closeErr  error
}

// NewStreamTransport writes frames to peerInput and reads frames from
// peerOutput. Either side that implements io.Closer is closed by Close.
// Use NewConnTransport when both directions are one connection.
func NewStreamTransport(peerInput io.Writer, peerOutput io.Reader) *StreamTransport {
	t := newStreamTransport(peerInput, peerOutput)
	if c, ok := peerInput.(io.Closer); ok {
		t.closers = append(t.closers, c)
	}
	if c, ok := peerOutput.(io.Closer); ok {
		t.closers = append(t.closers, c)
	}
	return t
}

// NewConnTransport frames over a single bidirectional connection such as a
// net.Conn or a unix socket.
func NewConnTransport(conn io.ReadWriteCloser) *StreamTransport {
	t := newStreamTransport(conn, conn)
	t.closers = []io.Closer{conn}
	return t
}

func newStreamTransport(w io.Writer, r io.Reader) *StreamTransport {
	return &StreamTransport{
		w:   w,
		r:   bufio.NewReader(r),
		max: DefaultMaxMessageSize,
	}
}

// SetMaxMessageSize changes the frame limit. Call it before the transport
// is handed to a Client or Host.
func (t *StreamTransport) SetMaxMessageSize(n int) {
	if n > 0 {
		t.max = n
	}
}

func (t *StreamTransport) ReadMessage() ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(t.r, hdr[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(hdr[:])
	switch {
	case n == 0:
		return nil, ErrEmptyFrame
	case uint64(n) > uint64(t.max):
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(t.r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

type writeDeadliner interface {
	SetWriteDeadline(time.Time) error
}

func (t *StreamTransport) WriteMessage(ctx context.Context, msg []byte) error {
	switch {
	case len(msg) == 0:
		return ErrEmptyFrame
	case len(msg) > t.max:
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(msg))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	frame := make([]byte, 4+len(msg))
	binary.BigEndian.PutUint32(frame, uint32(len(msg)))
	copy(frame[4:], msg)

	t.wmu.Lock()
	defer t.wmu.Unlock()
	if dl, ok := t.w.(writeDeadliner); ok {
		if deadline, ok := ctx.Deadline(); ok {
			_ = dl.SetWriteDeadline(deadline)
			defer func() { _ = dl.SetWriteDeadline(time.Time{}) }()
		}
	}
	_, err := t.w.Write(frame)
	return err
}

func (t *StreamTransport) Close() error {
	t.closeOnce.Do(func() {
		var errs []error
		for _, c := range t.closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		t.closeErr = errors.Join(errs...)
	})
	return t.closeErr
}
