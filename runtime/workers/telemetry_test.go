package workers

import (
	"chat-sdk/domain/event"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTelemetryWorker_Feeds_Handlers(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	telemetry := make(chan event.Event, 4)
	dropped := event.NewDroppedHandler(log)
	worker := NewTelemetryWorker(log, telemetry, []event.Handler{
		event.NewChannelCapacityHandler(log, 1),
		dropped,
	})

	telemetry <- event.Event{Type: event.EventDroppedType, Payload: event.EventDropped{Kind: event.MessageKind, Reason: "malformed"}}
	telemetry <- event.Event{Type: event.ChannelCapacityType, Payload: event.ChannelCapacity{ChannelName: "inbound", Capacity: 4, Length: 4}}
	close(telemetry)

	req.NoError(worker.Run(context.Background()))
	req.Equal(uint64(1), dropped.Count(event.MessageKind))
}

func TestChannelCapacityWorker_Samples_Channels(t *testing.T) {
	req := require.New(t)
	inbound := make(chan event.InboundEvent, 4)
	inbound <- event.IncomingConnectivity{Online: true}
	telemetry := make(chan event.Event, 4)
	worker := NewChannelCapacityWorker(slog.Default(), []NamedChannel{
		{Name: "inbound", Channel: inbound},
		{Name: "not a channel", Channel: 42},
	}, telemetry, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	select {
	case evt := <-telemetry:
		req.Equal(event.ChannelCapacityType, evt.Type)
		capacity, ok := evt.Payload.(event.ChannelCapacity)
		req.True(ok)
		req.Equal("inbound", capacity.ChannelName)
		req.Equal(4, capacity.Capacity)
		req.Equal(1, capacity.Length)
	case <-time.After(time.Second):
		req.Fail("No capacity sample received")
	}
}
