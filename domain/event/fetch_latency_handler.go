package event

import (
	"chat-sdk/errors"
	"log/slog"
	"time"
)

type FetchLatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewFetchLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *FetchLatencyHandler {
	return &FetchLatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *FetchLatencyHandler) Handle(e Event) {
	if e.Type != FetchCompletedType {
		return
	}
	payload, ok := e.Payload.(FetchCompleted)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}

	h.log.Debug("telemetry: dialog fetch latency",
		"dialog_id", payload.DialogID,
		"attempts", payload.Attempts,
		"duration_ms", payload.Duration.Milliseconds(),
	)

	if payload.Duration > h.latencyThreshold {
		h.log.Warn("slow dialog fetch detected", "dialog_id", payload.DialogID, "duration", payload.Duration)
	}
}
