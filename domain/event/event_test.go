package event

import (
	"chat-sdk/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_System_Message_Falls_Back_On_Extension_Dialog(t *testing.T) {
	req := require.New(t)

	evt := NewIncomingSystemMessage(domain.Message{
		ID:        "m1",
		Extension: domain.Extension{NotificationType: "1", DialogID: "d9"},
	})
	req.Equal("d9", evt.DialogID)
	req.Equal("d9", evt.DialogKey())
	req.Equal(SystemMessageKind, evt.Kind())

	// The message's own dialog id wins
	evt = NewIncomingSystemMessage(domain.Message{DialogID: "d1", Extension: domain.Extension{DialogID: "d9"}})
	req.Equal("d1", evt.DialogKey())
}

func Test_Events_Without_Dialog_Use_Global_Lane(t *testing.T) {
	req := require.New(t)

	req.Empty(IncomingConnectivity{Online: true}.DialogKey())
	req.Empty(IncomingReconnectFailed{}.DialogKey())
	req.Empty(IncomingMessageError{MessageID: "m1"}.DialogKey())
	req.Equal("d1", NewIncomingMessage("u1", domain.Message{DialogID: "d1"}).DialogKey())
}

func Test_Dropped_Handler_Counts_Per_Kind(t *testing.T) {
	req := require.New(t)
	handler := NewDroppedHandler(slog.Default())

	handler.Handle(Event{Type: EventDroppedType, Payload: EventDropped{Kind: MessageKind, Reason: "fetch_failure"}})
	handler.Handle(Event{Type: EventDroppedType, Payload: EventDropped{Kind: MessageKind, Reason: "malformed"}})
	handler.Handle(Event{Type: EventDroppedType, Payload: EventDropped{Kind: TypingKind, Reason: "malformed"}})
	// Ignored: wrong payload and other types
	handler.Handle(Event{Type: EventDroppedType, Payload: "garbage"})
	handler.Handle(Event{Type: FetchCompletedType, Payload: FetchCompleted{DialogID: "d1"}})

	req.Equal(uint64(2), handler.Count(MessageKind))
	req.Equal(uint64(1), handler.Count(TypingKind))
	req.Zero(handler.Count(SystemMessageKind))
}

func Test_Handlers_Ignore_Foreign_Payloads(t *testing.T) {
	log := slog.Default()
	handlers := []Handler{
		NewChannelCapacityHandler(log, 2),
		NewFetchLatencyHandler(log, time.Millisecond),
	}
	for _, h := range handlers {
		h.Handle(Event{Type: ChannelCapacityType, Payload: ChannelCapacity{ChannelName: "views", Capacity: 4, Length: 3}})
		h.Handle(Event{Type: ChannelCapacityType, Payload: ChannelCapacity{ChannelName: "unbuffered"}})
		h.Handle(Event{Type: FetchCompletedType, Payload: FetchCompleted{DialogID: "d1", Attempts: 2, Duration: time.Second}})
		h.Handle(Event{Type: FetchCompletedType, Payload: 42})
		h.Handle(Event{Type: ChannelCapacityType, Payload: 42})
	}
}
