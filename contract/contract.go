//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives view events from the fanout worker.
type EventSink interface {
	Consume(ctx context.Context, e event.ViewEvent) error
}

// ChatListener is the callback set a chat transport drives.
type ChatListener interface {
	OnMessage(senderID string, message domain.Message)
	OnSystemMessage(message domain.Message)
	OnTyping(isTyping bool, senderID, dialogID string)
	OnDeliveryReceipt(messageID, dialogID, userID string)
	OnReadReceipt(messageID, dialogID, userID string)
	OnSentMessageAck(lost, sent *domain.Message)
	OnMessageError(messageID string, err error)
	OnReconnectFailed()
	OnDisconnected()
	OnReconnected()
	OnConnectivityChanged(online bool)
}

// DialogLookup resolves a dialog on the backend.
type DialogLookup interface {
	FetchDialogByID(ctx context.Context, dialogID string) (domain.DialogRecord, error)
}

// ViewProjector is notified after every state change the UI has to render.
type ViewProjector interface {
	DialogUpdated(dialog domain.Dialog)
	MessageAppended(dialogID string, message domain.Message)
	UnreadCountChanged(dialogID string, count int)
	TypingChanged(dialogID, senderID string, isTyping bool)
	ConnectivityChanged(online bool)
	ReconnectFailed()
}

// ActiveViewContext is what the UI currently shows.
type ActiveViewContext interface {
	OpenDialogID() (string, bool)
	ActiveTab() domain.DialogType
}

// ReceiptHandler is the extension point for delivery and read receipts.
type ReceiptHandler interface {
	Delivered(ctx context.Context, receipt event.IncomingDeliveryReceipt)
	Read(ctx context.Context, receipt event.IncomingReadReceipt)
	SentAck(ctx context.Context, ack event.IncomingSentAck)
}

// Submitter accepts inbound events for ordered dispatch.
type Submitter interface {
	Submit(ctx context.Context, evt event.InboundEvent)
}

type IDialogCache interface {
	Get(dialogID string) (domain.Dialog, bool)
	Put(dialog domain.Dialog)
	Mutate(dialogID string, fn func(*domain.Dialog)) bool
}

type IDialogFetcher interface {
	FetchByID(ctx context.Context, dialogID string) (domain.Dialog, error)
}

type IDialogRepository interface {
	Save(dialog domain.Dialog) error
	Get(dialogID string) (domain.Dialog, bool, error)
	All() ([]domain.Dialog, error)
}
