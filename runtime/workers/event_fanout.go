package workers

import (
	"chat-sdk/contract"
	"chat-sdk/domain/event"
	"context"
	"log/slog"
	"time"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout delivers view events to every registered sink, in order.
//
// Each sink gets sinkTimeout per event; a slow or failing sink is logged and
// skipped without holding back the others. EventFanout is not a message
// broker: there is no retry and no durability.
type EventFanout struct {
	log         *slog.Logger
	views       chan event.ViewEvent
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, sinks []contract.EventSink,
	views chan event.ViewEvent, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, sinks: sinks, views: views, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt, ok := <-w.views:
			if !ok {
				return nil
			}
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping view event fanout")
			return nil
		}
	}
}

// Fanout One sink for each event
func (w *EventFanout) Fanout(ctx context.Context, evt event.ViewEvent) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume view event",
				"sink", sinkName(sink), "event", evt.ViewName(), "error", err)
		}
		cancel()
	}
}

func sinkName(sink contract.EventSink) string {
	if named, ok := sink.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "anonymous"
}
