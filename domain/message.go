// Package domain contains core concepts of the chat client.
// This file defines Message and the protocol extension it carries.
// Messages are immutable once inserted in a dialog.
package domain

import (
	"time"
)

// Message represents an immutable chat message.
type Message struct {
	ID        string
	DialogID  string
	SenderID  string
	Body      string
	Extension Extension
	Timestamp time.Time
}

// Extension is the protocol-specific metadata attached to a message.
type Extension struct {
	NotificationType string `json:"notification_type,omitempty"`
	DialogID         string `json:"dialog_id,omitempty"`
	DialogName       string `json:"dialog_name,omitempty"`
	OccupantsAdded   IDList `json:"occupants_ids_added,omitempty"`
	OccupantsRemoved IDList `json:"occupants_ids_removed,omitempty"`
}

type NotificationType int

const (
	Unknown NotificationType = iota
	DialogCreated
	MembersAdded
	MembersRemoved
	DialogRenamed
)

const (
	notificationCreated = "1"
	notificationUpdated = "2"
)

func (n NotificationType) String() string {
	switch n {
	case DialogCreated:
		return "dialog_created"
	case MembersAdded:
		return "members_added"
	case MembersRemoved:
		return "members_removed"
	case DialogRenamed:
		return "dialog_renamed"
	default:
		return "unknown"
	}
}

// Notification classifies the extension. An update carries exactly one change,
// checked in the order removed, added, renamed.
func (e Extension) Notification() NotificationType {
	switch e.NotificationType {
	case notificationCreated:
		return DialogCreated
	case notificationUpdated:
		switch {
		case len(e.OccupantsRemoved) > 0:
			return MembersRemoved
		case len(e.OccupantsAdded) > 0:
			return MembersAdded
		case e.DialogName != "":
			return DialogRenamed
		}
	}
	return Unknown
}
