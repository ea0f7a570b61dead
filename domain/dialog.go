// Package domain contains core concepts of the chat client.
// This file defines the Dialog entity and its in-place mutations.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/samber/lo"
)

type DialogType int

const (
	PrivateChat DialogType = iota
	PublicChannel
)

func (t DialogType) String() string {
	switch t {
	case PublicChannel:
		return "public"
	default:
		return "chat"
	}
}

// MessagePreview is what the dialog list shows under the dialog name.
type MessagePreview struct {
	Text     string
	SenderID string
	SentAt   time.Time
}

// Dialog is one conversation held in the local cache.
// Messages are ordered newest first.
type Dialog struct {
	ID          string
	Type        DialogType
	Name        string
	Members     []string
	PeerID      string
	Messages    []Message
	UnreadCount int
	LastMessage *MessagePreview
}

// Prepend inserts the message at the head of the stream and refreshes the preview.
func (d *Dialog) Prepend(m Message) {
	d.Messages = append([]Message{m}, d.Messages...)
	d.LastMessage = &MessagePreview{
		Text:     m.Body,
		SenderID: m.SenderID,
		SentAt:   m.Timestamp,
	}
}

// AddMembers appends the ids not already present. It reports whether membership changed.
func (d *Dialog) AddMembers(ids ...string) bool {
	changed := false
	for _, id := range lo.Uniq(ids) {
		if id == "" || lo.Contains(d.Members, id) {
			continue
		}
		d.Members = append(d.Members, id)
		changed = true
	}
	return changed
}

// RemoveMembers drops the given ids. Absent ids are ignored.
func (d *Dialog) RemoveMembers(ids ...string) bool {
	kept := lo.Without(d.Members, ids...)
	if len(kept) == len(d.Members) {
		return false
	}
	d.Members = kept
	return true
}

func (d *Dialog) HasMember(id string) bool {
	return lo.Contains(d.Members, id)
}

func (d *Dialog) IncrementUnread() int {
	d.UnreadCount++
	return d.UnreadCount
}

// Clone returns a deep copy so snapshots handed out of the cache never alias its state.
func (d Dialog) Clone() Dialog {
	c := d
	if d.Members != nil {
		c.Members = append([]string(nil), d.Members...)
	}
	if d.Messages != nil {
		c.Messages = append([]Message(nil), d.Messages...)
	}
	if d.LastMessage != nil {
		preview := *d.LastMessage
		c.LastMessage = &preview
	}
	return c
}
