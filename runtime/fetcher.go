package runtime

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"chat-sdk/errors"
	"chat-sdk/observability"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

var _ contract.IDialogFetcher = (*Fetcher)(nil)

const defaultFetchTimeout = 10 * time.Second

// FetchPolicy bounds a remote dialog lookup.
type FetchPolicy struct {
	Timeout    time.Duration // per attempt
	Retries    int           // attempts after the first one
	RetryDelay time.Duration // doubled after each failed attempt
}

// Fetcher resolves dialogs missing from the cache.
// Concurrent callers asking for the same id share a single lookup and its result.
type Fetcher struct {
	log       *slog.Logger
	lookup    contract.DialogLookup
	cache     contract.IDialogCache
	metrics   *observability.Metrics
	telemetry chan event.Event
	group     singleflight.Group
	policy    FetchPolicy
	selfID    string

	mu       sync.RWMutex
	lifetime context.Context
}

func NewFetcher(log *slog.Logger, lookup contract.DialogLookup, cache contract.IDialogCache,
	metrics *observability.Metrics, telemetry chan event.Event,
	policy FetchPolicy, selfID string) *Fetcher {
	if policy.Timeout <= 0 {
		policy.Timeout = defaultFetchTimeout
	}
	return &Fetcher{
		log:       log,
		lookup:    lookup,
		cache:     cache,
		metrics:   metrics,
		telemetry: telemetry,
		policy:    policy,
		selfID:    selfID,
		lifetime:  context.Background(),
	}
}

// Bind ties shared lookups to ctx: once it is done, pending lookups stop
// retrying and nothing more is cached.
func (f *Fetcher) Bind(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lifetime = ctx
}

func (f *Fetcher) lifetimeContext() context.Context {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lifetime
}

// FetchByID looks the dialog up, stores it in the cache and returns a snapshot.
// A failed lookup never touches the cache. The lookup runs under the bound
// lifetime rather than ctx so one impatient caller can't fail the others sharing it.
func (f *Fetcher) FetchByID(ctx context.Context, dialogID string) (domain.Dialog, error) {
	lifetime := f.lifetimeContext()
	ch := f.group.DoChan(dialogID, func() (any, error) {
		return f.fetch(lifetime, dialogID)
	})

	select {
	case <-ctx.Done():
		return domain.Dialog{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Dialog{}, res.Err
		}
		return res.Val.(domain.Dialog).Clone(), nil
	}
}

func (f *Fetcher) fetch(ctx context.Context, dialogID string) (domain.Dialog, error) {
	start := time.Now()
	f.metrics.Fetches.Inc()

	var lastErr error
	attempts := 0
	delay := f.policy.RetryDelay
	for i := 0; i <= f.policy.Retries; i++ {
		attempts++
		record, err := f.attempt(ctx, dialogID)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		if err == nil {
			dialog := record.ToDialog(f.selfID)
			f.cache.Put(dialog)
			f.report(dialogID, attempts, time.Since(start), nil)
			f.log.Debug("Dialog fetched", "dialog_id", dialogID, "attempts", attempts)
			return dialog, nil
		}
		lastErr = err
		if stderrors.Is(err, errors.ErrDialogNotFound) || i == f.policy.Retries {
			break
		}
		f.log.Debug("Dialog fetch attempt failed, retrying",
			"dialog_id", dialogID, "attempt", attempts, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
		case <-time.After(delay):
		}
		if ctx.Err() != nil {
			break
		}
		delay *= 2
	}

	f.metrics.FetchFailures.Inc()
	f.report(dialogID, attempts, time.Since(start), lastErr)
	f.log.Error("Dialog fetch failed", "dialog_id", dialogID, "attempts", attempts, "error", lastErr)
	return domain.Dialog{}, fmt.Errorf("%w: dialog %s: %w", errors.ErrFetchFailure, dialogID, lastErr)
}

// attempt runs one bounded lookup. A lookup ignoring its context still
// times out: the result is abandoned and the goroutine drains into a buffered channel.
func (f *Fetcher) attempt(ctx context.Context, dialogID string) (domain.DialogRecord, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.policy.Timeout)
	defer cancel()

	type result struct {
		record domain.DialogRecord
		err    error
	}
	done := make(chan result, 1)
	go func() {
		record, err := f.lookup.FetchDialogByID(attemptCtx, dialogID)
		done <- result{record: record, err: err}
	}()

	select {
	case <-attemptCtx.Done():
		if ctx.Err() != nil {
			return domain.DialogRecord{}, ctx.Err()
		}
		return domain.DialogRecord{}, fmt.Errorf("%w after %s", errors.ErrFetchTimeout, f.policy.Timeout)
	case res := <-done:
		if res.err != nil {
			return domain.DialogRecord{}, res.err
		}
		if res.record.ID == "" {
			res.record.ID = dialogID
		}
		return res.record, nil
	}
}

func (f *Fetcher) report(dialogID string, attempts int, duration time.Duration, err error) {
	f.metrics.FetchDuration.Observe(duration.Seconds())
	if f.telemetry == nil {
		return
	}
	select {
	case f.telemetry <- event.Event{
		Type:      event.FetchCompletedType,
		CreatedAt: time.Now().UTC(),
		Payload: event.FetchCompleted{
			DialogID: dialogID,
			Attempts: attempts,
			Duration: duration,
			Err:      err,
		},
	}:
	default:
		f.log.Debug("Observability telemetry event lost")
	}
}
