// Package transport drives a ChatListener from a WebSocket chat connection.
package transport

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	FrameMessage         = "message"
	FrameSystemMessage   = "system_message"
	FrameTyping          = "typing"
	FrameDelivered       = "delivered"
	FrameRead            = "read"
	FrameSentAck         = "sent_ack"
	FrameMessageError    = "message_error"
	FrameReconnectFailed = "reconnect_failed"

	maxFrameSize = 512 * 1024
)

var _ contract.Worker = (*WebSocketTransport)(nil)

type ReconnectPolicy struct {
	Attempts int
	Delay    time.Duration
}

// WebSocketTransport reads chat frames and turns them into listener callbacks.
// A dropped connection is reported as a disconnect, then redialed up to
// policy.Attempts times before the listener is told reconnection failed.
type WebSocketTransport struct {
	log      *slog.Logger
	endpoint string
	token    string
	listener contract.ChatListener
	dialer   *websocket.Dialer
	policy   ReconnectPolicy
}

func NewWebSocketTransport(log *slog.Logger, endpoint, token string,
	listener contract.ChatListener, policy ReconnectPolicy) *WebSocketTransport {
	return &WebSocketTransport{
		log:      log,
		endpoint: endpoint,
		token:    token,
		listener: listener,
		dialer:   websocket.DefaultDialer,
		policy:   policy,
	}
}

// Frame is one message of the chat stream.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type WireMessage struct {
	ID        domain.FlexID    `json:"id"`
	DialogID  string           `json:"dialog_id"`
	SenderID  domain.FlexID    `json:"sender_id"`
	Body      string           `json:"body"`
	Extension domain.Extension `json:"extension"`
	DateSent  int64            `json:"date_sent"`
}

type WireTyping struct {
	IsTyping bool          `json:"is_typing"`
	SenderID domain.FlexID `json:"sender_id"`
	DialogID string        `json:"dialog_id"`
}

type WireReceipt struct {
	MessageID string        `json:"message_id"`
	DialogID  string        `json:"dialog_id"`
	UserID    domain.FlexID `json:"user_id"`
}

type WireSentAck struct {
	Lost *WireMessage `json:"lost"`
	Sent *WireMessage `json:"sent"`
}

type WireMessageError struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

func (t *WebSocketTransport) Run(ctx context.Context) error {
	conn, err := t.dial(ctx)
	if err != nil {
		return fmt.Errorf("chat dial failed: %w", err)
	}
	t.log.Info("Chat connected", "endpoint", t.endpoint)

	for {
		err = t.readLoop(ctx, conn)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		t.log.Warn("Chat connection lost", "error", err)
		t.listener.OnDisconnected()

		conn, err = t.reconnect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.listener.OnReconnectFailed()
			return err
		}
		t.log.Info("Chat reconnected", "endpoint", t.endpoint)
		t.listener.OnReconnected()
	}
}

func (t *WebSocketTransport) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	header.Set("QB-Token", t.token)
	conn, _, err := t.dialer.DialContext(ctx, t.endpoint, header)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(maxFrameSize)
	return conn, nil
}

func (t *WebSocketTransport) reconnect(ctx context.Context) (*websocket.Conn, error) {
	var lastErr error
	for attempt := 1; attempt <= t.policy.Attempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(t.policy.Delay):
		}
		conn, err := t.dial(ctx)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		t.log.Debug("Reconnect attempt failed", "attempt", attempt, "error", err)
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", errors.ErrReconnectExhausted, t.policy.Attempts, lastErr)
}

// readLoop returns when the connection breaks or ctx is done. The connection
// is always closed on return.
func (t *WebSocketTransport) readLoop(ctx context.Context, conn *websocket.Conn) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return fmt.Errorf("%w: %v", errors.ErrTransportClosed, err)
			}
			return err
		}
		if err = t.dispatch(data); err != nil {
			t.log.Warn("Chat frame ignored", "error", err)
		}
	}
}

// dispatch decodes one frame and calls the matching listener callback.
func (t *WebSocketTransport) dispatch(data []byte) error {
	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}

	switch frame.Type {
	case FrameMessage:
		var m WireMessage
		if err := decode(frame, &m); err != nil {
			return err
		}
		msg := m.toMessage()
		t.listener.OnMessage(msg.SenderID, msg)
	case FrameSystemMessage:
		var m WireMessage
		if err := decode(frame, &m); err != nil {
			return err
		}
		t.listener.OnSystemMessage(m.toMessage())
	case FrameTyping:
		var typing WireTyping
		if err := decode(frame, &typing); err != nil {
			return err
		}
		t.listener.OnTyping(typing.IsTyping, string(typing.SenderID), typing.DialogID)
	case FrameDelivered, FrameRead:
		var receipt WireReceipt
		if err := decode(frame, &receipt); err != nil {
			return err
		}
		if frame.Type == FrameDelivered {
			t.listener.OnDeliveryReceipt(receipt.MessageID, receipt.DialogID, string(receipt.UserID))
		} else {
			t.listener.OnReadReceipt(receipt.MessageID, receipt.DialogID, string(receipt.UserID))
		}
	case FrameSentAck:
		var ack WireSentAck
		if err := decode(frame, &ack); err != nil {
			return err
		}
		t.listener.OnSentMessageAck(ack.Lost.toMessagePtr(), ack.Sent.toMessagePtr())
	case FrameMessageError:
		var failure WireMessageError
		if err := decode(frame, &failure); err != nil {
			return err
		}
		t.listener.OnMessageError(failure.MessageID, fmt.Errorf("%s", failure.Error))
	case FrameReconnectFailed:
		t.listener.OnReconnectFailed()
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownFrame, frame.Type)
	}
	return nil
}

func decode(frame Frame, v any) error {
	if len(frame.Payload) == 0 {
		return fmt.Errorf("%w: %s frame without payload", errors.ErrInvalidPayload, frame.Type)
	}
	if err := json.Unmarshal(frame.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrInvalidPayload, frame.Type, err)
	}
	return nil
}

func (m WireMessage) toMessage() domain.Message {
	msg := domain.Message{
		ID:        string(m.ID),
		DialogID:  m.DialogID,
		SenderID:  string(m.SenderID),
		Body:      m.Body,
		Extension: m.Extension,
	}
	if m.DateSent != 0 {
		msg.Timestamp = time.Unix(m.DateSent, 0).UTC()
	}
	return msg
}

func (m *WireMessage) toMessagePtr() *domain.Message {
	if m == nil {
		return nil
	}
	msg := m.toMessage()
	return &msg
}
