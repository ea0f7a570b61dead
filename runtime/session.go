// Package runtime turns transport callbacks into dialog cache updates and view
// events. It owns the dispatcher, the dialog cache and the single-flight fetcher,
// and wires them with the supervised workers of a chat session.
package runtime

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"chat-sdk/observability"
	"chat-sdk/projection"
	"chat-sdk/runtime/workers"
	"chat-sdk/sink"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

type SessionConfig struct {
	SelfID                string
	ActiveTab             domain.DialogType
	BufferSize            int
	Fetch                 FetchPolicy
	PublishTimeout        time.Duration
	SinkTimeout           time.Duration
	RestartInterval       time.Duration
	MetricInterval        time.Duration
	LowCapacityThreshold  int
	FetchLatencyThreshold time.Duration
	WarmStart             bool
}

// Session is the entry point of the SDK: transports report to Listener, the UI
// reads Screen and drives OpenDialog / SelectTab.
type Session struct {
	ID         string
	log        *slog.Logger
	config     SessionConfig
	inbound    chan event.InboundEvent
	views      chan event.ViewEvent
	telemetry  chan event.Event
	cache      *DialogCache
	fetcher    *Fetcher
	dispatcher *Dispatcher
	listener   *Listener
	projector  *FanoutProjector
	screen     *projection.Screen
	supervisor *workers.Supervisor
	repository contract.IDialogRepository
	sinks      []contract.EventSink
	dropped    *event.DroppedHandler

	mu     sync.Mutex
	done   chan struct{}
	cancel context.CancelFunc
}

// NewSession builds every component of the session. repository may be nil,
// dialogs are then kept in memory only. reg may be nil for unregistered metrics.
func NewSession(log *slog.Logger, config SessionConfig, lookup contract.DialogLookup,
	repository contract.IDialogRepository, reg prometheus.Registerer,
	extraSinks ...contract.EventSink) *Session {
	bufferSize := max(config.BufferSize, 1)
	inbound := make(chan event.InboundEvent, bufferSize)
	views := make(chan event.ViewEvent, bufferSize)
	telemetry := make(chan event.Event, bufferSize)

	metrics := observability.NewMetrics(reg)
	cache := NewDialogCache()
	screen := projection.NewScreen(config.ActiveTab)
	projector := NewFanoutProjector(log, views, config.PublishTimeout)
	fetcher := NewFetcher(log, lookup, cache, metrics, telemetry, config.Fetch, config.SelfID)
	dispatcher := NewDispatcher(log, cache, fetcher, projector, screen, metrics, telemetry, config.SelfID)

	// The screen goes first so the UI state is current before anything slower runs.
	sinks := []contract.EventSink{screen}
	if repository != nil {
		sinks = append(sinks, sink.NewDiskSink(repository, cache, log))
	}
	sinks = append(sinks, extraSinks...)

	return &Session{
		ID:         uuid.NewString(),
		log:        log,
		config:     config,
		inbound:    inbound,
		views:      views,
		telemetry:  telemetry,
		cache:      cache,
		fetcher:    fetcher,
		dispatcher: dispatcher,
		listener:   NewListener(log, inbound, config.PublishTimeout),
		projector:  projector,
		screen:     screen,
		supervisor: workers.NewSupervisor(log, config.RestartInterval),
		repository: repository,
		sinks:      sinks,
		dropped:    event.NewDroppedHandler(log),
	}
}

// WithReceiptHandler must be called before Start.
func (s *Session) WithReceiptHandler(h contract.ReceiptHandler) *Session {
	s.dispatcher.WithReceiptHandler(h)
	return s
}

// Start loads persisted dialogs when warm start is enabled, then runs the
// supervised workers in the background until ctx is done or Stop is called.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return fmt.Errorf("session %s already started", s.ID)
	}

	if s.config.WarmStart && s.repository != nil {
		if err := s.warmStart(ctx); err != nil {
			return err
		}
	}

	s.supervisor.Add(
		workers.NewDispatchWorker(s.inbound, s.dispatcher, s.log),
		workers.NewEventFanout(s.log, s.sinks, s.views, s.config.SinkTimeout),
		workers.NewTelemetryWorker(s.log, s.telemetry, []event.Handler{
			event.NewChannelCapacityHandler(s.log, s.config.LowCapacityThreshold),
			event.NewFetchLatencyHandler(s.log, s.config.FetchLatencyThreshold),
			s.dropped,
		}),
	)
	if s.config.MetricInterval > 0 {
		s.supervisor.Add(workers.NewChannelCapacityWorker(s.log, []workers.NamedChannel{
			{Name: "inbound", Channel: s.inbound},
			{Name: "views", Channel: s.views},
		}, s.telemetry, s.config.MetricInterval))
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.fetcher.Bind(ctx)

	s.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		s.supervisor.Run(ctx)
	}(s.done)

	s.log.Info("Chat session started", "session_id", s.ID, "user_id", s.config.SelfID)
	return nil
}

// warmStart fills the cache from the last persisted snapshot.
func (s *Session) warmStart(ctx context.Context) error {
	dialogs, err := s.repository.All()
	if err != nil {
		return fmt.Errorf("warm start failed: %w", err)
	}
	for _, dialog := range dialogs {
		s.cache.Put(dialog)
		_ = s.screen.Consume(ctx, event.DialogUpdated{Dialog: dialog})
		_ = s.screen.Consume(ctx, event.UnreadCountChanged{DialogID: dialog.ID, Count: dialog.UnreadCount})
	}
	s.log.Info("Dialogs restored from disk", "count", len(dialogs))
	return nil
}

// Stop cancels the workers and waits for them and for the dispatcher lanes.
func (s *Session) Stop() {
	s.mu.Lock()
	done, cancel := s.done, s.cancel
	s.mu.Unlock()

	s.log.Info("Requesting chat session shutdown", "session_id", s.ID)
	if cancel != nil {
		cancel()
	}
	s.supervisor.Stop()
	if done != nil {
		<-done
	}
	s.dispatcher.Wait()
	s.log.Debug("Chat session stopped", "session_id", s.ID)
}

// Listener is what a transport registers its callbacks on.
func (s *Session) Listener() contract.ChatListener {
	return s.listener
}

func (s *Session) Cache() *DialogCache {
	return s.cache
}

func (s *Session) Screen() *projection.Screen {
	return s.screen
}

func (s *Session) Dropped() *event.DroppedHandler {
	return s.dropped
}

// OpenDialog shows the dialog and marks it read.
func (s *Session) OpenDialog(dialogID string) {
	s.screen.Open(dialogID)
	if s.cache.Mutate(dialogID, func(d *domain.Dialog) { d.UnreadCount = 0 }) {
		s.projector.UnreadCountChanged(dialogID, 0)
	}
}

func (s *Session) CloseDialog() {
	s.screen.Close()
}

// SelectTab switches the dialog list and lists the cached dialogs of that tab.
func (s *Session) SelectTab(tab domain.DialogType) {
	s.screen.SelectTab(tab)
	for _, dialog := range s.cache.Snapshot() {
		if dialog.Type == tab {
			s.projector.DialogUpdated(dialog)
		}
	}
}
