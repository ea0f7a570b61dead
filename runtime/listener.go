package runtime

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var _ contract.ChatListener = (*Listener)(nil)

// Listener turns transport callbacks into inbound events. Callbacks may come
// from any goroutine; the inbound channel is the single serialization point.
type Listener struct {
	log            *slog.Logger
	inbound        chan event.InboundEvent
	publishTimeout time.Duration
}

func NewListener(log *slog.Logger, inbound chan event.InboundEvent, publishTimeout time.Duration) *Listener {
	return &Listener{log: log, inbound: inbound, publishTimeout: publishTimeout}
}

func (l *Listener) OnMessage(senderID string, message domain.Message) {
	l.publish(event.NewIncomingMessage(senderID, stamp(message)))
}

func (l *Listener) OnSystemMessage(message domain.Message) {
	l.publish(event.NewIncomingSystemMessage(stamp(message)))
}

func (l *Listener) OnTyping(isTyping bool, senderID, dialogID string) {
	l.publish(event.IncomingTyping{IsTyping: isTyping, SenderID: senderID, DialogID: dialogID})
}

func (l *Listener) OnDeliveryReceipt(messageID, dialogID, userID string) {
	l.publish(event.IncomingDeliveryReceipt{MessageID: messageID, DialogID: dialogID, UserID: userID})
}

func (l *Listener) OnReadReceipt(messageID, dialogID, userID string) {
	l.publish(event.IncomingReadReceipt{MessageID: messageID, DialogID: dialogID, UserID: userID})
}

func (l *Listener) OnSentMessageAck(lost, sent *domain.Message) {
	l.publish(event.IncomingSentAck{Lost: lost, Sent: sent})
}

func (l *Listener) OnMessageError(messageID string, err error) {
	l.publish(event.IncomingMessageError{MessageID: messageID, Err: err})
}

func (l *Listener) OnReconnectFailed() {
	l.publish(event.IncomingReconnectFailed{})
}

func (l *Listener) OnDisconnected() {
	l.publish(event.IncomingConnectivity{Online: false})
}

func (l *Listener) OnReconnected() {
	l.publish(event.IncomingConnectivity{Online: true})
}

func (l *Listener) OnConnectivityChanged(online bool) {
	l.publish(event.IncomingConnectivity{Online: online})
}

// publish blocks the transport for at most publishTimeout, then drops.
func (l *Listener) publish(evt event.InboundEvent) {
	select {
	case l.inbound <- evt:
		return
	default:
	}
	timer := time.NewTimer(l.publishTimeout)
	defer timer.Stop()
	select {
	case l.inbound <- evt:
	case <-timer.C:
		l.log.Warn("Inbound channel full, event dropped", "kind", evt.Kind(), "dialog_id", evt.DialogKey())
	}
}

// stamp gives a local identity and time to messages the backend sent without them.
func stamp(message domain.Message) domain.Message {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	return message
}
