package runtime

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"chat-sdk/errors"
	"chat-sdk/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// globalLane serializes the events that concern no particular dialog.
const globalLane = ""

// Dispatcher routes inbound transport events to their handling path and keeps
// the dialog cache up to date.
//
// Each dialog owns a FIFO lane drained by one goroutine, so events for the same
// dialog apply in arrival order, and an event waiting on a fetch holds back the
// ones queued behind it. Lanes of different dialogs run concurrently. A lane
// goroutine exits as soon as its queue is empty.
type Dispatcher struct {
	log       *slog.Logger
	cache     contract.IDialogCache
	fetcher   contract.IDialogFetcher
	view      contract.ViewProjector
	active    contract.ActiveViewContext
	receipts  contract.ReceiptHandler
	metrics   *observability.Metrics
	telemetry chan event.Event
	validator *validator.Validate
	selfID    string

	mu    sync.Mutex
	seq   uint64
	lanes map[string]*lane
	wg    sync.WaitGroup
}

type queued struct {
	seq uint64
	evt event.InboundEvent
}

type lane struct {
	queue   []queued
	lastSeq uint64
	// Events up to failedUpTo were queued before failure was known.
	failedUpTo uint64
	failure    error
}

func NewDispatcher(log *slog.Logger,
	cache contract.IDialogCache,
	fetcher contract.IDialogFetcher,
	view contract.ViewProjector,
	active contract.ActiveViewContext,
	metrics *observability.Metrics,
	telemetry chan event.Event,
	selfID string) *Dispatcher {
	return &Dispatcher{
		log:       log,
		cache:     cache,
		fetcher:   fetcher,
		view:      view,
		active:    active,
		metrics:   metrics,
		telemetry: telemetry,
		validator: validator.New(),
		selfID:    selfID,
		lanes:     make(map[string]*lane),
	}
}

// WithReceiptHandler plugs in receipt handling. Without one, receipts and
// sent acknowledgements are accepted and dropped.
func (d *Dispatcher) WithReceiptHandler(h contract.ReceiptHandler) *Dispatcher {
	d.receipts = h
	return d
}

// Submit validates the event and queues it on its lane. It never blocks on
// event handling. Malformed events are dropped here.
func (d *Dispatcher) Submit(ctx context.Context, evt event.InboundEvent) {
	if evt == nil {
		return
	}
	if err := d.validator.Struct(evt); err != nil {
		d.drop(evt.Kind(), "malformed", fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err))
		return
	}

	key := evt.DialogKey()
	d.mu.Lock()
	l, running := d.lanes[key]
	if !running {
		l = &lane{}
		d.lanes[key] = l
		d.wg.Add(1)
	}
	d.seq++
	l.queue = append(l.queue, queued{seq: d.seq, evt: evt})
	l.lastSeq = d.seq
	d.mu.Unlock()

	if !running {
		go d.drain(ctx, key, l)
	}
}

// Wait blocks until every lane is drained.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) drain(ctx context.Context, key string, l *lane) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		if len(l.queue) == 0 {
			delete(d.lanes, key)
			d.mu.Unlock()
			return
		}
		next := l.queue[0]
		l.queue[0] = queued{}
		l.queue = l.queue[1:]
		failure := l.failure
		sharesFailure := next.seq <= l.failedUpTo
		d.mu.Unlock()

		if sharesFailure && d.awaitsFetch(next.evt) {
			d.drop(next.evt.Kind(), "fetch_failure", failure)
			continue
		}
		d.safeHandle(ctx, next.evt)
	}
}

// awaitsFetch reports whether handling evt would go through a dialog fetch
// because its dialog is not cached.
func (d *Dispatcher) awaitsFetch(evt event.InboundEvent) bool {
	switch evt.(type) {
	case event.IncomingMessage, event.IncomingSystemMessage:
		_, cached := d.cache.Get(evt.DialogKey())
		return !cached
	}
	return false
}

// markFetchFailed makes the failure of a fetch the outcome of every event
// queued on the dialog lane so far.
func (d *Dispatcher) markFetchFailed(dialogID string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l, ok := d.lanes[dialogID]; ok {
		l.failedUpTo = l.lastSeq
		l.failure = err
	}
}

// safeHandle keeps a failing handler from taking its lane down with it.
func (d *Dispatcher) safeHandle(ctx context.Context, evt event.InboundEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.drop(evt.Kind(), "panic", fmt.Errorf("%w: %v", errors.ErrHandlerPanic, r))
		}
	}()
	d.handle(ctx, evt)
}

func (d *Dispatcher) handle(ctx context.Context, evt event.InboundEvent) {
	switch e := evt.(type) {
	case event.IncomingMessage:
		d.onMessage(ctx, e)
	case event.IncomingSystemMessage:
		d.onSystemMessage(ctx, e)
	case event.IncomingTyping:
		d.onTyping(e)
	case event.IncomingDeliveryReceipt:
		if d.receipts == nil {
			d.log.Debug("Delivery receipt ignored", "message_id", e.MessageID, "dialog_id", e.DialogID)
			break
		}
		d.receipts.Delivered(ctx, e)
	case event.IncomingReadReceipt:
		if d.receipts == nil {
			d.log.Debug("Read receipt ignored", "message_id", e.MessageID, "dialog_id", e.DialogID)
			break
		}
		d.receipts.Read(ctx, e)
	case event.IncomingSentAck:
		if d.receipts == nil {
			d.log.Debug("Sent acknowledgement ignored")
			break
		}
		d.receipts.SentAck(ctx, e)
	case event.IncomingMessageError:
		d.log.Warn("Message was not delivered", "message_id", e.MessageID, "error", e.Err)
	case event.IncomingReconnectFailed:
		d.log.Warn("Chat reconnection failed")
		d.view.ReconnectFailed()
	case event.IncomingConnectivity:
		d.log.Info("Connectivity changed", "online", e.Online)
		d.view.ConnectivityChanged(e.Online)
	default:
		d.drop(evt.Kind(), "unknown", fmt.Errorf("%w: %T", errors.ErrInvalidPayload, evt))
		return
	}
	d.metrics.EventsDispatched.WithLabelValues(string(evt.Kind())).Inc()
}

// onMessage handles a chat message. On a cached dialog the message is
// prepended, any notification it carries is applied, and exactly one of
// inline render or unread increment happens depending on whether the dialog
// is the open one. On a miss the dialog is fetched and rendered as is: the
// fetched state is authoritative and the message is not inserted.
func (d *Dispatcher) onMessage(ctx context.Context, e event.IncomingMessage) {
	msg := e.Message
	msg.DialogID = e.DialogID
	if msg.SenderID == "" {
		msg.SenderID = e.SenderID
	}

	var (
		updated      domain.Dialog
		notification domain.NotificationType
		unread       int
		inline       bool
	)
	cached := d.cache.Mutate(e.DialogID, func(dialog *domain.Dialog) {
		dialog.Prepend(msg)
		notification = applyNotification(dialog, msg.Extension)
		// Read under the cache lock so a dialog opened meanwhile is not marked unread.
		openID, isOpen := d.active.OpenDialogID()
		inline = isOpen && openID == e.DialogID
		if !inline {
			unread = dialog.IncrementUnread()
		}
		updated = dialog.Clone()
	})
	if !cached {
		d.fetchAndRender(ctx, event.MessageKind, e.DialogID)
		return
	}

	// The cache is committed: the render or the badge goes out even when the
	// list refresh fails.
	defer func() {
		if inline {
			d.metrics.InlineRenders.Inc()
			d.view.MessageAppended(e.DialogID, msg)
			return
		}
		d.metrics.UnreadIncrements.Inc()
		d.view.UnreadCountChanged(e.DialogID, unread)
	}()

	if notification != domain.Unknown {
		d.log.Debug("Dialog notification applied", "dialog_id", e.DialogID, "notification", notification.String())
	}
	if notification == domain.DialogRenamed || d.active.ActiveTab() == updated.Type {
		d.view.DialogUpdated(updated)
	}
}

func (d *Dispatcher) onSystemMessage(ctx context.Context, e event.IncomingSystemMessage) {
	if e.Message.Extension.Notification() == domain.DialogCreated {
		d.fetchAndRender(ctx, event.SystemMessageKind, e.DialogID)
		return
	}
	if _, ok := d.cache.Get(e.DialogID); ok {
		d.log.Debug("System message for a cached dialog ignored", "dialog_id", e.DialogID)
		return
	}
	d.fetchAndRender(ctx, event.SystemMessageKind, e.DialogID)
}

// onTyping forwards typing of someone else in the open dialog. Without a
// dialog id, the sender has to be the peer of the open private chat.
func (d *Dispatcher) onTyping(e event.IncomingTyping) {
	if e.SenderID == d.selfID {
		return
	}
	openID, isOpen := d.active.OpenDialogID()
	if !isOpen {
		return
	}
	if e.DialogID != "" {
		if e.DialogID == openID {
			d.view.TypingChanged(e.DialogID, e.SenderID, e.IsTyping)
		}
		return
	}
	dialog, ok := d.cache.Get(openID)
	if ok && dialog.PeerID != "" && dialog.PeerID == e.SenderID {
		d.view.TypingChanged(dialog.ID, e.SenderID, e.IsTyping)
	}
}

// fetchAndRender resolves the dialog and renders it when its tab is active.
// A failure is terminal here and for the events queued behind this one: it has
// been logged by the fetcher and the cache was left untouched.
func (d *Dispatcher) fetchAndRender(ctx context.Context, kind event.Kind, dialogID string) {
	dialog, err := d.fetcher.FetchByID(ctx, dialogID)
	if err != nil {
		d.markFetchFailed(dialogID, err)
		d.drop(kind, "fetch_failure", err)
		return
	}
	if d.active.ActiveTab() == dialog.Type {
		d.view.DialogUpdated(dialog)
	}
}

func (d *Dispatcher) drop(kind event.Kind, reason string, err error) {
	d.log.Warn("Inbound event dropped", "kind", kind, "reason", reason, "error", err)
	d.metrics.EventsDropped.WithLabelValues(string(kind), reason).Inc()
	if d.telemetry == nil {
		return
	}
	select {
	case d.telemetry <- event.Event{
		Type:      event.EventDroppedType,
		CreatedAt: time.Now().UTC(),
		Payload:   event.EventDropped{Kind: kind, Reason: reason},
	}:
	default:
		d.log.Debug("Observability telemetry event lost")
	}
}

func applyNotification(dialog *domain.Dialog, ext domain.Extension) domain.NotificationType {
	notification := ext.Notification()
	switch notification {
	case domain.MembersRemoved:
		dialog.RemoveMembers(ext.OccupantsRemoved...)
	case domain.MembersAdded:
		dialog.AddMembers(ext.OccupantsAdded...)
	case domain.DialogRenamed:
		dialog.Name = ext.DialogName
	}
	return notification
}
