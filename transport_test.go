package desktopapi

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamTransportFrames(t *testing.T) {
	r, w := io.Pipe()
	tr := NewStreamTransport(w, r)
	defer tr.Close()

	go func() {
		_ = tr.WriteMessage(context.Background(), []byte("hello"))
		_ = tr.WriteMessage(context.Background(), []byte{0})
	}()
	got, err := tr.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
	got, err = tr.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, got)
}

func TestStreamTransportWriteLimits(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTransport(&buf, &bytes.Buffer{})
	tr.SetMaxMessageSize(4)

	assert.ErrorIs(t, tr.WriteMessage(context.Background(), nil), ErrEmptyFrame)
	assert.ErrorIs(t, tr.WriteMessage(context.Background(), []byte("12345")), ErrFrameTooLarge)
	require.NoError(t, tr.WriteMessage(context.Background(), []byte("1234")))
	assert.Equal(t, []byte{0, 0, 0, 4, '1', '2', '3', '4'}, buf.Bytes())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tr.WriteMessage(ctx, []byte("x")), context.Canceled)
}

func frame(n uint32, body []byte) []byte {
	b := binary.BigEndian.AppendUint32(nil, n)
	return append(b, body...)
}

func TestStreamTransportReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty frame", frame(0, nil), ErrEmptyFrame},
		{"oversized frame", frame(DefaultMaxMessageSize+1, nil), ErrFrameTooLarge},
		{"truncated body", frame(10, []byte("abc")), io.ErrUnexpectedEOF},
		{"truncated header", []byte{0, 0}, io.ErrUnexpectedEOF},
		{"clean end", nil, io.EOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewStreamTransport(io.Discard, bytes.NewReader(tt.in))
			_, err := tr.ReadMessage()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConnTransportHonorsContextDeadline(t *testing.T) {
	a, b := net.Pipe()
	defer b.Close()
	tr := NewConnTransport(a)
	defer tr.Close()

	// nobody reads b, so the write blocks until the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := tr.WriteMessage(ctx, []byte("stuck"))
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
}

func TestStreamTransportCloseClosesBothEnds(t *testing.T) {
	r1, w1 := io.Pipe()
	r2, w2 := io.Pipe()
	tr := NewStreamTransport(w1, r2)
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	_, err := r1.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
	_, err = w2.Write([]byte("x"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
