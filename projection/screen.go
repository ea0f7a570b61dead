// Package projection builds the local UI state from view events.
// Handles the dialog list, rendered messages, badges and indicators.
// It is also the active view context the dispatcher consults.
package projection

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"
)

var (
	_ contract.EventSink         = (*Screen)(nil)
	_ contract.ActiveViewContext = (*Screen)(nil)
)

// Screen holds what a chat UI displays: the dialog list of the active tab,
// the messages rendered inline in the open dialog, unread badges, typing
// indicators and connectivity.
type Screen struct {
	mu              sync.RWMutex
	openDialogID    string
	activeTab       domain.DialogType
	dialogs         map[string]domain.Dialog
	rendered        map[string][]domain.Message
	unread          map[string]int
	typing          map[string]map[string]struct{}
	online          bool
	reconnectFailed bool
}

func NewScreen(activeTab domain.DialogType) *Screen {
	return &Screen{
		activeTab: activeTab,
		dialogs:   make(map[string]domain.Dialog),
		rendered:  make(map[string][]domain.Message),
		unread:    make(map[string]int),
		typing:    make(map[string]map[string]struct{}),
		online:    true,
	}
}

func (s *Screen) Name() string { return "screen" }

func (s *Screen) OpenDialogID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.openDialogID, s.openDialogID != ""
}

func (s *Screen) ActiveTab() domain.DialogType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// Open shows a dialog. Its badge is cleared.
func (s *Screen) Open(dialogID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openDialogID = dialogID
	delete(s.unread, dialogID)
}

func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openDialogID = ""
}

// SelectTab switches the list. Dialogs of the other tab are no longer shown.
func (s *Screen) SelectTab(tab domain.DialogType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
	for id, dialog := range s.dialogs {
		if dialog.Type != tab {
			delete(s.dialogs, id)
		}
	}
}

func (s *Screen) Consume(_ context.Context, e event.ViewEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch evt := e.(type) {
	case event.DialogUpdated:
		// A dialog of the hidden tab only refreshes an entry already listed.
		if _, listed := s.dialogs[evt.Dialog.ID]; evt.Dialog.Type != s.activeTab && !listed {
			break
		}
		s.dialogs[evt.Dialog.ID] = evt.Dialog
	case event.MessageAppended:
		s.rendered[evt.DialogID] = append(s.rendered[evt.DialogID], evt.Message)
	case event.UnreadCountChanged:
		// The open dialog never shows a badge, even one computed just before it opened.
		if evt.Count <= 0 || evt.DialogID == s.openDialogID {
			delete(s.unread, evt.DialogID)
			break
		}
		s.unread[evt.DialogID] = evt.Count
	case event.TypingChanged:
		s.setTyping(evt)
	case event.ConnectivityChanged:
		s.online = evt.Online
	case event.ReconnectFailed:
		s.reconnectFailed = true
	}
	return nil
}

func (s *Screen) setTyping(evt event.TypingChanged) {
	senders, ok := s.typing[evt.DialogID]
	if !evt.IsTyping {
		if ok {
			delete(senders, evt.SenderID)
			if len(senders) == 0 {
				delete(s.typing, evt.DialogID)
			}
		}
		return
	}
	if !ok {
		senders = make(map[string]struct{})
		s.typing[evt.DialogID] = senders
	}
	senders[evt.SenderID] = struct{}{}
}

// Dialogs lists the displayed dialogs, most recent activity first.
func (s *Screen) Dialogs() []domain.Dialog {
	s.mu.RLock()
	dialogs := lo.Values(s.dialogs)
	s.mu.RUnlock()

	sort.SliceStable(dialogs, func(i, j int) bool {
		return lastActivity(dialogs[i]) > lastActivity(dialogs[j])
	})
	return dialogs
}

func lastActivity(d domain.Dialog) int64 {
	if d.LastMessage == nil {
		return 0
	}
	return d.LastMessage.SentAt.UnixNano()
}

// Rendered returns the messages rendered inline for the dialog, in arrival order.
func (s *Screen) Rendered(dialogID string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Message(nil), s.rendered[dialogID]...)
}

func (s *Screen) Unread(dialogID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread[dialogID]
}

func (s *Screen) Typing(dialogID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	senders := lo.Keys(s.typing[dialogID])
	sort.Strings(senders)
	return senders
}

func (s *Screen) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

func (s *Screen) ReconnectFailed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reconnectFailed
}
