package sink

import (
	"chat-sdk/contract"
	"chat-sdk/domain/event"
	"context"
	"fmt"
	"log/slog"
)

var _ contract.EventSink = DiskSink{}

// DiskSink keeps the persisted copy of each dialog in step with the cache.
// The cache is the source of truth: for events carrying only a dialog id the
// current cached state is saved.
type DiskSink struct {
	repository contract.IDialogRepository
	cache      contract.IDialogCache
	log        *slog.Logger
}

func NewDiskSink(repository contract.IDialogRepository, cache contract.IDialogCache, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, cache: cache, log: log}
}

func (d DiskSink) Name() string { return "disk" }

func (d DiskSink) Consume(_ context.Context, e event.ViewEvent) error {
	switch evt := e.(type) {
	case event.DialogUpdated:
		return d.repository.Save(evt.Dialog)
	case event.UnreadCountChanged:
		return d.saveCached(evt.DialogID)
	case event.MessageAppended:
		return d.saveCached(evt.DialogID)
	default:
		d.log.Debug(fmt.Sprintf("Not persisted view event : %s", e.ViewName()))
		return nil
	}
}

func (d DiskSink) saveCached(dialogID string) error {
	dialog, ok := d.cache.Get(dialogID)
	if !ok {
		return nil
	}
	return d.repository.Save(dialog)
}
