package runtime

import (
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"chat-sdk/mocks"
	"chat-sdk/observability"
	"chat-sdk/projection"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherFixture struct {
	dispatcher *Dispatcher
	cache      *DialogCache
	lookup     *mocks.MockDialogLookup
	view       *mocks.MockViewProjector
	screen     *projection.Screen
	metrics    *observability.Metrics
	telemetry  chan event.Event
}

func newDispatcherFixture(t *testing.T, tab domain.DialogType) dispatcherFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	telemetry := make(chan event.Event, 16)
	cache := NewDialogCache()
	lookup := mocks.NewMockDialogLookup(ctrl)
	view := mocks.NewMockViewProjector(ctrl)
	screen := projection.NewScreen(tab)
	fetcher := NewFetcher(log, lookup, cache, metrics, telemetry,
		FetchPolicy{Timeout: time.Second, RetryDelay: time.Millisecond}, "self")
	return dispatcherFixture{
		dispatcher: NewDispatcher(log, cache, fetcher, view, screen, metrics, telemetry, "self"),
		cache:      cache,
		lookup:     lookup,
		view:       view,
		screen:     screen,
		metrics:    metrics,
		telemetry:  telemetry,
	}
}

func (f dispatcherFixture) submit(events ...event.InboundEvent) {
	for _, evt := range events {
		f.dispatcher.Submit(context.Background(), evt)
	}
	f.dispatcher.Wait()
}

func message(id, dialogID, senderID string) event.IncomingMessage {
	return event.NewIncomingMessage(senderID, domain.Message{
		ID:        id,
		DialogID:  dialogID,
		SenderID:  senderID,
		Body:      "body of " + id,
		Timestamp: time.Now().UTC(),
	})
}

func Test_Uncached_Message_Fetches_Dialog_Without_Inserting_It(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PublicChannel)

	// Given d1 is unknown and the backend holds a public channel
	f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d1").
		Return(domain.DialogRecord{ID: "d1", Type: domain.RecordPublicGroup, Name: "general"}, nil).Times(1)
	f.view.EXPECT().DialogUpdated(gomock.Any()).Do(func(d domain.Dialog) {
		req.Equal("d1", d.ID)
	}).Times(1)

	// When a message arrives for it
	f.submit(message("m1", "d1", "u1"))

	// Then the fetched dialog is cached as is
	dialog, ok := f.cache.Get("d1")
	req.True(ok)
	req.Equal(domain.PublicChannel, dialog.Type)
	req.Empty(dialog.Messages)
	req.Zero(dialog.UnreadCount)
}

func Test_Message_For_Background_Dialog_Increments_Unread(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// Given d2 is cached with 3 unread and d1 is open
	f.cache.Put(domain.Dialog{ID: "d2", Type: domain.PrivateChat, UnreadCount: 3})
	f.screen.Open("d1")

	f.view.EXPECT().DialogUpdated(gomock.Any()).Times(1)
	f.view.EXPECT().UnreadCountChanged("d2", 4).Times(1)

	// When a message arrives for d2
	f.submit(message("m1", "d2", "u1"))

	// Then the badge moved, nothing was rendered inline
	dialog, _ := f.cache.Get("d2")
	req.Equal(4, dialog.UnreadCount)
	req.Len(dialog.Messages, 1)
	req.Equal("body of m1", dialog.LastMessage.Text)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.UnreadIncrements))
	req.Zero(testutil.ToFloat64(f.metrics.InlineRenders))
}

func Test_Message_For_Open_Dialog_Renders_Inline(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// Given d3 is cached and open
	f.cache.Put(domain.Dialog{ID: "d3", Type: domain.PrivateChat, UnreadCount: 2,
		Messages: []domain.Message{{ID: "old"}}})
	f.screen.Open("d3")

	incoming := message("m1", "d3", "u1")
	f.view.EXPECT().DialogUpdated(gomock.Any()).Times(1)
	f.view.EXPECT().MessageAppended("d3", incoming.Message).Times(1)

	f.submit(incoming)

	// Then the message heads the stream and the unread count is unchanged
	dialog, _ := f.cache.Get("d3")
	req.Equal(2, dialog.UnreadCount)
	req.Equal([]string{"m1", "old"}, []string{dialog.Messages[0].ID, dialog.Messages[1].ID})
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.InlineRenders))
	req.Zero(testutil.ToFloat64(f.metrics.UnreadIncrements))
}

func Test_Members_Removed_Notification(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PublicChannel)

	// Given d4 is cached with u9 and u10
	f.cache.Put(domain.Dialog{ID: "d4", Type: domain.PublicChannel, Members: []string{"u9", "u10"}})
	f.view.EXPECT().DialogUpdated(gomock.Any()).Times(2)
	f.view.EXPECT().UnreadCountChanged("d4", gomock.Any()).Times(2)

	// When u9 is removed, by someone else than u9
	removal := message("m1", "d4", "admin")
	removal.Message.Extension = domain.Extension{NotificationType: "2", OccupantsRemoved: domain.IDList{"u9"}}
	f.submit(removal)

	// Then only u10 is left
	dialog, _ := f.cache.Get("d4")
	req.Equal([]string{"u10"}, dialog.Members)

	// When the same removal is replayed, membership is unchanged
	removal.Message.ID = "m2"
	f.submit(removal)
	dialog, _ = f.cache.Get("d4")
	req.Equal([]string{"u10"}, dialog.Members)
}

func Test_Members_Added_Notification_Does_Not_Duplicate(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PublicChannel)

	f.cache.Put(domain.Dialog{ID: "d4", Type: domain.PublicChannel, Members: []string{"u1"}})
	f.view.EXPECT().DialogUpdated(gomock.Any()).AnyTimes()
	f.view.EXPECT().UnreadCountChanged("d4", gomock.Any()).AnyTimes()

	added := message("m1", "d4", "admin")
	added.Message.Extension = domain.Extension{NotificationType: "2", OccupantsAdded: domain.IDList{"u1", "u2", "u2"}}
	f.submit(added)

	dialog, _ := f.cache.Get("d4")
	req.Equal([]string{"u1", "u2"}, dialog.Members)
}

func Test_Rename_Notification_Updates_Dialog_Of_Hidden_Tab(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// Given a public dialog while the chat tab is active
	f.cache.Put(domain.Dialog{ID: "p1", Type: domain.PublicChannel, Name: "old"})
	f.view.EXPECT().DialogUpdated(gomock.Any()).Do(func(d domain.Dialog) {
		req.Equal("new", d.Name)
	}).Times(1)
	f.view.EXPECT().UnreadCountChanged("p1", 1).Times(1)

	rename := message("m1", "p1", "admin")
	rename.Message.Extension = domain.Extension{NotificationType: "2", DialogName: "new"}
	f.submit(rename)

	dialog, _ := f.cache.Get("p1")
	req.Equal("new", dialog.Name)
}

func Test_Concurrent_Messages_For_Uncached_Dialog_Fetch_Once(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// Given d5 is unknown
	f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d5").
		Return(domain.DialogRecord{ID: "d5", Type: domain.RecordPrivate, OccupantsIDs: domain.IDList{"self", "u1"}}, nil).
		Times(1)
	f.view.EXPECT().DialogUpdated(gomock.Any()).AnyTimes()
	f.view.EXPECT().UnreadCountChanged("d5", 1).Times(1)

	// When two messages arrive back to back
	f.submit(message("m1", "d5", "u1"), message("m2", "d5", "u1"))

	// Then one fetch served both, and the second message applied on top
	dialog, _ := f.cache.Get("d5")
	req.Len(dialog.Messages, 1)
	req.Equal("m2", dialog.Messages[0].ID)
	req.Equal("u1", dialog.PeerID)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.Fetches))
}

func Test_Events_Wait_For_Their_Dialog_Fetch_But_Not_Others(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// Given d6 is unknown with a slow backend, and d7 is cached
	release := make(chan struct{})
	f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d6").
		DoAndReturn(func(ctx context.Context, id string) (domain.DialogRecord, error) {
			<-release
			return domain.DialogRecord{ID: "d6", Type: domain.RecordPrivate}, nil
		}).Times(1)
	f.cache.Put(domain.Dialog{ID: "d7", Type: domain.PrivateChat})

	d7Done := make(chan struct{})
	f.view.EXPECT().DialogUpdated(gomock.Any()).AnyTimes()
	f.view.EXPECT().UnreadCountChanged("d7", 1).Do(func(string, int) { close(d7Done) })
	f.view.EXPECT().UnreadCountChanged("d6", 1)
	f.view.EXPECT().UnreadCountChanged("d6", 2)

	ctx := context.Background()
	f.dispatcher.Submit(ctx, message("m1", "d6", "u1"))
	f.dispatcher.Submit(ctx, message("m2", "d6", "u1"))
	f.dispatcher.Submit(ctx, message("m3", "d6", "u1"))
	f.dispatcher.Submit(ctx, message("x1", "d7", "u2"))

	// Then d7 is handled while d6 is still fetching
	select {
	case <-d7Done:
	case <-time.After(time.Second):
		req.Fail("d7 was held back by the d6 fetch")
	}
	_, cached := f.cache.Get("d6")
	req.False(cached)

	// When the fetch resolves, d6 events apply in arrival order
	close(release)
	f.dispatcher.Wait()
	dialog, _ := f.cache.Get("d6")
	req.Equal([]string{"m3", "m2"}, []string{dialog.Messages[0].ID, dialog.Messages[1].ID})
	req.Equal(2, dialog.UnreadCount)
}

func Test_Fetch_Failure_Drops_Event_And_Keeps_Cache(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d8").
		Return(domain.DialogRecord{}, stderrors.New("unreachable")).Times(1)

	f.submit(message("m1", "d8", "u1"))

	_, ok := f.cache.Get("d8")
	req.False(ok)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.EventsDropped.WithLabelValues("message", "fetch_failure")))
}

func Test_Events_Queued_Behind_A_Failed_Fetch_Share_Its_Failure(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// Given d9 is unknown and its backend answers with an error once released
	release := make(chan struct{})
	f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d9").
		DoAndReturn(func(ctx context.Context, id string) (domain.DialogRecord, error) {
			<-release
			return domain.DialogRecord{}, stderrors.New("unreachable")
		}).Times(1)

	// When three messages and a system message queue up while the lookup is pending
	ctx := context.Background()
	f.dispatcher.Submit(ctx, message("m1", "d9", "u1"))
	f.dispatcher.Submit(ctx, message("m2", "d9", "u1"))
	f.dispatcher.Submit(ctx, message("m3", "d9", "u1"))
	f.dispatcher.Submit(ctx, event.NewIncomingSystemMessage(domain.Message{ID: "s1", DialogID: "d9"}))
	close(release)
	f.dispatcher.Wait()

	// Then a single lookup ran and every event was dropped with its failure
	_, ok := f.cache.Get("d9")
	req.False(ok)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.Fetches))
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.FetchFailures))
	req.Equal(float64(3), testutil.ToFloat64(f.metrics.EventsDropped.WithLabelValues("message", "fetch_failure")))
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.EventsDropped.WithLabelValues("system_message", "fetch_failure")))
}

func Test_Events_After_A_Failed_Fetch_Try_Again(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// Given the first lookup of d11 fails and the next one succeeds
	gomock.InOrder(
		f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d11").
			Return(domain.DialogRecord{}, stderrors.New("unreachable")),
		f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d11").
			Return(domain.DialogRecord{ID: "d11", Type: domain.RecordPrivate}, nil),
	)
	f.view.EXPECT().DialogUpdated(gomock.Any()).Times(1)

	// When a message arrives once the failed lane has drained
	f.submit(message("m1", "d11", "u1"))
	f.submit(message("m2", "d11", "u1"))

	// Then it fetches again
	_, ok := f.cache.Get("d11")
	req.True(ok)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.EventsDropped.WithLabelValues("message", "fetch_failure")))
}

func Test_Malformed_Event_Is_Dropped(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	// A message without dialog, a receipt without message id
	f.submit(
		event.NewIncomingMessage("u1", domain.Message{ID: "m1"}),
		event.IncomingDeliveryReceipt{DialogID: "d1", UserID: "u1"},
	)

	req.Equal(float64(1), testutil.ToFloat64(f.metrics.EventsDropped.WithLabelValues("message", "malformed")))
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.EventsDropped.WithLabelValues("delivery_receipt", "malformed")))
	evt := <-f.telemetry
	req.Equal(event.EventDroppedType, evt.Type)
	req.Equal("malformed", evt.Payload.(event.EventDropped).Reason)
}

func Test_System_Message_Dialog_Created_Fetches(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PublicChannel)

	// Given a cached but outdated dialog
	f.cache.Put(domain.Dialog{ID: "d9", Type: domain.PublicChannel, Name: "stale"})
	f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d9").
		Return(domain.DialogRecord{ID: "d9", Type: domain.RecordPublicGroup, Name: "fresh"}, nil).Times(1)
	f.view.EXPECT().DialogUpdated(gomock.Any()).Times(1)

	f.submit(event.NewIncomingSystemMessage(domain.Message{
		ID:        "s1",
		Extension: domain.Extension{NotificationType: "1", DialogID: "d9"},
	}))

	dialog, _ := f.cache.Get("d9")
	req.Equal("fresh", dialog.Name)
}

func Test_System_Message_For_Cached_Dialog_Is_Ignored(t *testing.T) {
	f := newDispatcherFixture(t, domain.PublicChannel)
	f.cache.Put(domain.Dialog{ID: "d9", Type: domain.PublicChannel})

	// No lookup and no view call expected
	f.submit(event.NewIncomingSystemMessage(domain.Message{
		ID:        "s1",
		DialogID:  "d9",
		Extension: domain.Extension{NotificationType: "2", DialogName: "ignored"},
	}))
}

func Test_System_Message_For_Uncached_Dialog_Fetches(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)

	f.lookup.EXPECT().FetchDialogByID(gomock.Any(), "d10").
		Return(domain.DialogRecord{ID: "d10", Type: domain.RecordPublicGroup}, nil).Times(1)

	// The dialog belongs to the hidden tab: cached, not rendered
	f.submit(event.NewIncomingSystemMessage(domain.Message{ID: "s1", DialogID: "d10"}))

	_, ok := f.cache.Get("d10")
	req.True(ok)
}

func Test_Typing(t *testing.T) {
	f := newDispatcherFixture(t, domain.PrivateChat)
	f.cache.Put(domain.Dialog{ID: "c1", Type: domain.PrivateChat, PeerID: "peer"})

	// Nothing open: ignored
	f.submit(event.IncomingTyping{IsTyping: true, SenderID: "peer", DialogID: "c1"})

	f.screen.Open("c1")
	f.view.EXPECT().TypingChanged("c1", "peer", true).Times(1)
	f.view.EXPECT().TypingChanged("c1", "peer", false).Times(1)

	f.submit(
		// Own typing: ignored
		event.IncomingTyping{IsTyping: true, SenderID: "self", DialogID: "c1"},
		// Another dialog: ignored
		event.IncomingTyping{IsTyping: true, SenderID: "peer", DialogID: "c2"},
		// Open dialog: forwarded
		event.IncomingTyping{IsTyping: true, SenderID: "peer", DialogID: "c1"},
	)
	f.submit(
		// No dialog id: matched on the private chat peer
		event.IncomingTyping{IsTyping: false, SenderID: "peer"},
		// No dialog id and not the peer: ignored
		event.IncomingTyping{IsTyping: true, SenderID: "stranger"},
	)
}

func Test_Receipts_Go_To_Receipt_Handler(t *testing.T) {
	f := newDispatcherFixture(t, domain.PrivateChat)
	ctrl := gomock.NewController(t)

	// Without a handler receipts are accepted silently
	f.submit(event.IncomingReadReceipt{MessageID: "m1", DialogID: "d1", UserID: "u1"})

	receipts := mocks.NewMockReceiptHandler(ctrl)
	f.dispatcher.WithReceiptHandler(receipts)

	delivered := event.IncomingDeliveryReceipt{MessageID: "m1", DialogID: "d1", UserID: "u1"}
	read := event.IncomingReadReceipt{MessageID: "m1", DialogID: "d1", UserID: "u1"}
	ack := event.IncomingSentAck{Sent: &domain.Message{ID: "m2"}}
	gomock.InOrder(
		receipts.EXPECT().Delivered(gomock.Any(), delivered),
		receipts.EXPECT().Read(gomock.Any(), read),
	)
	receipts.EXPECT().SentAck(gomock.Any(), ack)

	f.submit(delivered, read, ack)
}

func Test_Connectivity_And_Reconnect_Failure(t *testing.T) {
	f := newDispatcherFixture(t, domain.PrivateChat)

	gomock.InOrder(
		f.view.EXPECT().ConnectivityChanged(false),
		f.view.EXPECT().ReconnectFailed(),
		f.view.EXPECT().ConnectivityChanged(true),
	)

	f.submit(
		event.IncomingConnectivity{Online: false},
		event.IncomingMessageError{MessageID: "m1", Err: stderrors.New("rejected")},
		event.IncomingReconnectFailed{},
		event.IncomingConnectivity{Online: true},
	)
}

func Test_Handler_Panic_Does_Not_Kill_The_Lane(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)
	f.cache.Put(domain.Dialog{ID: "d1", Type: domain.PrivateChat})

	// The list refresh crashes once; the badge still follows the cache
	gomock.InOrder(
		f.view.EXPECT().DialogUpdated(gomock.Any()).Do(func(domain.Dialog) { panic("renderer crashed") }),
		f.view.EXPECT().UnreadCountChanged("d1", 1),
		f.view.EXPECT().DialogUpdated(gomock.Any()),
		f.view.EXPECT().UnreadCountChanged("d1", 2),
	)

	f.submit(message("m1", "d1", "u1"), message("m2", "d1", "u1"))

	req.Equal(float64(1), testutil.ToFloat64(f.metrics.EventsDropped.WithLabelValues("message", "panic")))
	dialog, _ := f.cache.Get("d1")
	req.Equal(2, dialog.UnreadCount)
}

// openingCache opens the dialog on screen right before each cache mutation,
// as a user clicking it while the message is being handled.
type openingCache struct {
	*DialogCache
	screen *projection.Screen
}

func (c openingCache) Mutate(dialogID string, fn func(*domain.Dialog)) bool {
	c.screen.Open(dialogID)
	return c.DialogCache.Mutate(dialogID, fn)
}

func Test_Dialog_Opened_While_Message_Is_Handled_Renders_Inline(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t, domain.PrivateChat)
	f.cache.Put(domain.Dialog{ID: "d12", Type: domain.PrivateChat})

	dispatcher := NewDispatcher(logs.GetLoggerFromLevel(slog.LevelDebug),
		openingCache{DialogCache: f.cache, screen: f.screen},
		nil, f.view, f.screen, f.metrics, f.telemetry, "self")

	incoming := message("m1", "d12", "u1")
	f.view.EXPECT().DialogUpdated(gomock.Any()).Times(1)
	f.view.EXPECT().MessageAppended("d12", incoming.Message).Times(1)

	dispatcher.Submit(context.Background(), incoming)
	dispatcher.Wait()

	dialog, _ := f.cache.Get("d12")
	req.Zero(dialog.UnreadCount)
}
