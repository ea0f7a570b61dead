package runtime

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"sort"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IDialogCache = (*DialogCache)(nil)

// DialogCache is the process-wide dialog store of a session.
// Every read hands out a deep copy; every write goes through the lock, so a
// Mutate is an atomic read-modify-write for its dialog.
type DialogCache struct {
	mu      sync.RWMutex
	dialogs map[string]*domain.Dialog
}

func NewDialogCache() *DialogCache {
	return &DialogCache{
		dialogs: make(map[string]*domain.Dialog),
	}
}

// Get returns a snapshot of the dialog, if cached.
func (c *DialogCache) Get(dialogID string) (domain.Dialog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dialog, ok := c.dialogs[dialogID]
	if !ok {
		return domain.Dialog{}, false
	}
	return dialog.Clone(), true
}

// Put stores the dialog, replacing any entry with the same id.
func (c *DialogCache) Put(dialog domain.Dialog) {
	stored := dialog.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs[dialog.ID] = &stored
}

// Mutate applies fn to the cached dialog in place. It is a no-op returning
// false when the dialog is absent: callers fetch first.
func (c *DialogCache) Mutate(dialogID string, fn func(*domain.Dialog)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialog, ok := c.dialogs[dialogID]
	if !ok {
		return false
	}
	fn(dialog)
	return true
}

func (c *DialogCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dialogs)
}

// Snapshot copies every cached dialog, ordered by id.
func (c *DialogCache) Snapshot() []domain.Dialog {
	c.mu.RLock()
	dialogs := lo.MapToSlice(c.dialogs, func(_ string, d *domain.Dialog) domain.Dialog {
		return d.Clone()
	})
	c.mu.RUnlock()

	sort.Slice(dialogs, func(i, j int) bool { return dialogs[i].ID < dialogs[j].ID })
	return dialogs
}
