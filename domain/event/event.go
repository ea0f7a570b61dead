package event

import (
	"chat-sdk/domain"
)

type Kind string

const (
	MessageKind         Kind = "message"
	SystemMessageKind   Kind = "system_message"
	TypingKind          Kind = "typing"
	DeliveryReceiptKind Kind = "delivery_receipt"
	ReadReceiptKind     Kind = "read_receipt"
	SentAckKind         Kind = "sent_ack"
	MessageErrorKind    Kind = "message_error"
	ReconnectFailedKind Kind = "reconnect_failed"
	ConnectivityKind    Kind = "connectivity"
)

// InboundEvent is anything the chat transport delivers to the session.
// DialogKey selects the ordering lane; an empty key means no dialog is involved.
type InboundEvent interface {
	Kind() Kind
	DialogKey() string
}

type IncomingMessage struct {
	SenderID string `validate:"required"`
	DialogID string `validate:"required"`
	Message  domain.Message
}

func NewIncomingMessage(senderID string, message domain.Message) IncomingMessage {
	return IncomingMessage{SenderID: senderID, DialogID: message.DialogID, Message: message}
}

func (e IncomingMessage) Kind() Kind        { return MessageKind }
func (e IncomingMessage) DialogKey() string { return e.DialogID }

// IncomingSystemMessage carries a dialog id taken from the message itself,
// falling back on the one in its extension.
type IncomingSystemMessage struct {
	DialogID string `validate:"required"`
	Message  domain.Message
}

func NewIncomingSystemMessage(message domain.Message) IncomingSystemMessage {
	dialogID := message.DialogID
	if dialogID == "" {
		dialogID = message.Extension.DialogID
	}
	return IncomingSystemMessage{DialogID: dialogID, Message: message}
}

func (e IncomingSystemMessage) Kind() Kind        { return SystemMessageKind }
func (e IncomingSystemMessage) DialogKey() string { return e.DialogID }

type IncomingTyping struct {
	IsTyping bool
	SenderID string `validate:"required"`
	DialogID string
}

func (e IncomingTyping) Kind() Kind        { return TypingKind }
func (e IncomingTyping) DialogKey() string { return e.DialogID }

type IncomingDeliveryReceipt struct {
	MessageID string `validate:"required"`
	DialogID  string `validate:"required"`
	UserID    string `validate:"required"`
}

func (e IncomingDeliveryReceipt) Kind() Kind        { return DeliveryReceiptKind }
func (e IncomingDeliveryReceipt) DialogKey() string { return e.DialogID }

type IncomingReadReceipt struct {
	MessageID string `validate:"required"`
	DialogID  string `validate:"required"`
	UserID    string `validate:"required"`
}

func (e IncomingReadReceipt) Kind() Kind        { return ReadReceiptKind }
func (e IncomingReadReceipt) DialogKey() string { return e.DialogID }

type IncomingSentAck struct {
	Lost *domain.Message
	Sent *domain.Message
}

func (e IncomingSentAck) Kind() Kind        { return SentAckKind }
func (e IncomingSentAck) DialogKey() string { return "" }

type IncomingMessageError struct {
	MessageID string
	Err       error
}

func (e IncomingMessageError) Kind() Kind        { return MessageErrorKind }
func (e IncomingMessageError) DialogKey() string { return "" }

type IncomingReconnectFailed struct{}

func (e IncomingReconnectFailed) Kind() Kind        { return ReconnectFailedKind }
func (e IncomingReconnectFailed) DialogKey() string { return "" }

type IncomingConnectivity struct {
	Online bool
}

func (e IncomingConnectivity) Kind() Kind        { return ConnectivityKind }
func (e IncomingConnectivity) DialogKey() string { return "" }
