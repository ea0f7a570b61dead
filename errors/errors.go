package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrHandlerPanic       = fmt.Errorf("event handler panic")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")
	ErrMalformedEvent     = fmt.Errorf("malformed event")
	ErrFetchFailure       = fmt.Errorf("dialog fetch failed")
	ErrFetchTimeout       = fmt.Errorf("dialog fetch timed out")
	ErrDialogNotFound     = fmt.Errorf("dialog not found")
	ErrTransportClosed    = fmt.Errorf("transport closed")
	ErrReconnectExhausted = fmt.Errorf("reconnect attempts exhausted")
	ErrUnknownFrame       = fmt.Errorf("unknown frame type")
)
