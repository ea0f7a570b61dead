package event

import (
	"chat-sdk/domain"
	"time"
)

// ViewEvent is a state change the UI layer has to render.
type ViewEvent interface {
	ViewName() string
}

type DialogUpdated struct {
	Dialog domain.Dialog
}

func (e DialogUpdated) ViewName() string { return "dialog_updated" }

type MessageAppended struct {
	DialogID string
	Message  domain.Message
}

func (e MessageAppended) ViewName() string { return "message_appended" }

type UnreadCountChanged struct {
	DialogID string
	Count    int
}

func (e UnreadCountChanged) ViewName() string { return "unread_count_changed" }

type TypingChanged struct {
	DialogID string
	SenderID string
	IsTyping bool
}

func (e TypingChanged) ViewName() string { return "typing_changed" }

type ConnectivityChanged struct {
	Online bool
}

func (e ConnectivityChanged) ViewName() string { return "connectivity_changed" }

type ReconnectFailed struct {
	At time.Time
}

func (e ReconnectFailed) ViewName() string { return "reconnect_failed" }
