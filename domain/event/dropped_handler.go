package event

import (
	"chat-sdk/errors"
	"log/slog"
	"sync"
)

// DroppedHandler keeps a per-kind tally of inbound events that were discarded.
type DroppedHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter uint64
	hit     map[Kind]uint64
}

func NewDroppedHandler(log *slog.Logger) *DroppedHandler {
	return &DroppedHandler{
		log: log,
		hit: make(map[Kind]uint64),
	}
}

func (h *DroppedHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case EventDroppedType:
		payload, ok := event.Payload.(EventDropped)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter++
		h.hit[payload.Kind]++
		h.log.Debug("inbound event dropped", "kind", payload.Kind, "reason", payload.Reason, "total", h.counter)
	}
}

func (h *DroppedHandler) Count(kind Kind) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hit[kind]
}
