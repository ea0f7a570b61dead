package event

import "time"

type Type string

const (
	ChannelCapacityType Type = "CHANNEL_CAPACITY"
	FetchCompletedType  Type = "FETCH_COMPLETED"
	EventDroppedType    Type = "EVENT_DROPPED"
)

// Event is a telemetry record, never part of the dialog state.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

type FetchCompleted struct {
	DialogID string
	Attempts int
	Duration time.Duration
	Err      error
}

type EventDropped struct {
	Kind   Kind
	Reason string
}
