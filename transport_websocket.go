package desktopapi

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketTransport carries one envelope per websocket message. Binary
// frames hold the raw bytes; text frames hold them base64 encoded, which is
// what a webview bridge can pass through.
type WebSocketTransport struct {
	conn *websocket.Conn
	text bool

	wmu       sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// NewWebSocketTransport wraps an established connection.
func NewWebSocketTransport(conn *websocket.Conn) *WebSocketTransport {
	conn.SetReadLimit(DefaultMaxMessageSize)
	return &WebSocketTransport{conn: conn}
}

// DialWebSocket connects to a host listening at url.
func DialWebSocket(ctx context.Context, url string, header http.Header) (*WebSocketTransport, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, err
	}
	return NewWebSocketTransport(conn), nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// UpgradeWebSocket upgrades an HTTP request on the host side.
func UpgradeWebSocket(w http.ResponseWriter, r *http.Request) (*WebSocketTransport, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return NewWebSocketTransport(conn), nil
}

// SetTextFrames switches outgoing messages to base64 text frames. Incoming
// frames of either type are always accepted.
func (t *WebSocketTransport) SetTextFrames(on bool) {
	t.wmu.Lock()
	t.text = on
	t.wmu.Unlock()
}

func (t *WebSocketTransport) ReadMessage() ([]byte, error) {
	for {
		typ, data, err := t.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		switch typ {
		case websocket.BinaryMessage:
		case websocket.TextMessage:
			data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
			if err != nil {
				return nil, err
			}
		default:
			continue
		}
		if len(data) == 0 {
			return nil, ErrEmptyFrame
		}
		return data, nil
	}
}

func (t *WebSocketTransport) WriteMessage(ctx context.Context, msg []byte) error {
	if len(msg) == 0 {
		return ErrEmptyFrame
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.wmu.Lock()
	defer t.wmu.Unlock()
	deadline, _ := ctx.Deadline()
	if err := t.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	if t.text {
		return t.conn.WriteMessage(websocket.TextMessage, []byte(base64.StdEncoding.EncodeToString(msg)))
	}
	return t.conn.WriteMessage(websocket.BinaryMessage, msg)
}

func (t *WebSocketTransport) Close() error {
	t.closeOnce.Do(func() {
		t.wmu.Lock()
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = t.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		t.wmu.Unlock()
		if err := t.conn.Close(); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
			t.closeErr = err
		}
	})
	return t.closeErr
}
