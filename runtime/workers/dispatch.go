package workers

import (
	"chat-sdk/contract"
	"chat-sdk/domain/event"
	"context"
	"log/slog"
)

var _ contract.Worker = (*DispatchWorker)(nil)

// DispatchWorker is the single reader of the inbound channel. Reading from one
// goroutine keeps the transport's arrival order when events reach the dispatcher.
type DispatchWorker struct {
	inbound    chan event.InboundEvent
	dispatcher contract.Submitter
	log        *slog.Logger
}

func NewDispatchWorker(
	inbound chan event.InboundEvent,
	dispatcher contract.Submitter,
	log *slog.Logger) *DispatchWorker {
	return &DispatchWorker{
		inbound:    inbound,
		dispatcher: dispatcher,
		log:        log,
	}
}

func (w *DispatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping dispatch worker")
			return ctx.Err()
		case evt, ok := <-w.inbound:
			if !ok {
				w.log.Debug("Inbound channel is closed")
				return nil
			}
			w.dispatcher.Submit(ctx, evt)
		}
	}
}
