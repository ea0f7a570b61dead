package workers

import (
	"chat-sdk/domain/event"
	"chat-sdk/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatchWorker_Submits_In_Arrival_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := mocks.NewMockSubmitter(ctrl)
	inbound := make(chan event.InboundEvent, 3)
	worker := NewDispatchWorker(inbound, submitter, slog.Default())

	first := event.IncomingTyping{IsTyping: true, SenderID: "u1", DialogID: "d1"}
	second := event.IncomingConnectivity{Online: false}
	gomock.InOrder(
		submitter.EXPECT().Submit(gomock.Any(), first),
		submitter.EXPECT().Submit(gomock.Any(), second),
	)
	inbound <- first
	inbound <- second
	close(inbound)

	// A closed inbound channel ends the worker without error
	done := make(chan error, 1)
	go func() { done <- worker.Run(context.Background()) }()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("Dispatch worker did not stop")
	}
}

func TestDispatchWorker_Stops_On_Cancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	worker := NewDispatchWorker(make(chan event.InboundEvent), mocks.NewMockSubmitter(ctrl), slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req.ErrorIs(worker.Run(ctx), context.Canceled)
}
