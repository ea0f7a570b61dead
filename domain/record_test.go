package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDialogRecord_ToDialog_PublicChannel(t *testing.T) {
	req := require.New(t)
	record := DialogRecord{
		ID:           "d1",
		Type:         RecordPublicGroup,
		Name:         "General",
		OccupantsIDs: IDList{"u1", "u2"},
	}

	dialog := record.ToDialog("u1")

	req.Equal("d1", dialog.ID)
	req.Equal(PublicChannel, dialog.Type)
	req.Equal("General", dialog.Name)
	req.Equal([]string{"u1", "u2"}, dialog.Members)
	req.Empty(dialog.Messages)
	req.Zero(dialog.UnreadCount)
	req.Empty(dialog.PeerID)
	req.Nil(dialog.LastMessage)
}

func TestDialogRecord_ToDialog_PrivateChatPeer(t *testing.T) {
	req := require.New(t)
	record := DialogRecord{
		ID:                  "d2",
		Type:                RecordPrivate,
		OccupantsIDs:        IDList{"self", "peer"},
		LastMessage:         "see you",
		LastMessageDateSent: 1700000000,
		LastMessageUserID:   "peer",
		UnreadMessagesCount: 5,
	}

	dialog := record.ToDialog("self")

	req.Equal(PrivateChat, dialog.Type)
	req.Equal("peer", dialog.PeerID)
	req.Equal(5, dialog.UnreadCount)
	req.NotNil(dialog.LastMessage)
	req.Equal("see you", dialog.LastMessage.Text)
	req.Equal("peer", dialog.LastMessage.SenderID)
	req.Equal(time.Unix(1700000000, 0).UTC(), dialog.LastMessage.SentAt)
}

func TestDialogRecord_ToDialog_GroupIsChatTab(t *testing.T) {
	dialog := DialogRecord{ID: "d3", Type: RecordGroup, UnreadMessagesCount: -2}.ToDialog("u1")
	require.Equal(t, PrivateChat, dialog.Type)
	require.Zero(t, dialog.UnreadCount)
}

func TestDialogRecord_UnmarshalJSON(t *testing.T) {
	req := require.New(t)
	payload := `{
		"_id": "5a1b",
		"type": 3,
		"name": "Bob",
		"occupants_ids": [1001, "1002"],
		"last_message": "ok",
		"last_message_date_sent": 1700000000,
		"last_message_user_id": 1002,
		"unread_messages_count": 2
	}`

	var record DialogRecord
	req.NoError(json.Unmarshal([]byte(payload), &record))

	req.Equal("5a1b", record.ID)
	req.Equal(IDList{"1001", "1002"}, record.OccupantsIDs)
	req.Equal(FlexID("1002"), record.LastMessageUserID)
	req.Equal(2, record.UnreadMessagesCount)
}

func TestIDList_CommaSeparated(t *testing.T) {
	req := require.New(t)
	var ext Extension
	req.NoError(json.Unmarshal([]byte(`{"notification_type":"2","occupants_ids_removed":"u9, u10,"}`), &ext))
	req.Equal(IDList{"u9", "u10"}, ext.OccupantsRemoved)
}

func TestIDList_Invalid(t *testing.T) {
	var ids IDList
	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &ids))
}
