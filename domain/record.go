package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Raw dialog types returned by the lookup service.
const (
	RecordPublicGroup = 1
	RecordGroup       = 2
	RecordPrivate     = 3
)

// DialogRecord is the raw dialog shape returned by the dialog lookup service.
type DialogRecord struct {
	ID                  string `json:"_id"`
	Type                int    `json:"type"`
	Name                string `json:"name"`
	OccupantsIDs        IDList `json:"occupants_ids"`
	LastMessage         string `json:"last_message"`
	LastMessageDateSent int64  `json:"last_message_date_sent"`
	LastMessageUserID   FlexID `json:"last_message_user_id"`
	UnreadMessagesCount int    `json:"unread_messages_count"`
}

// ToDialog normalizes the record into the cached shape. selfID is the session
// user, needed to resolve the peer of a private chat.
// The message stream always starts empty: history is not part of the record.
func (r DialogRecord) ToDialog(selfID string) Dialog {
	dialog := Dialog{
		ID:          r.ID,
		Type:        PrivateChat,
		Name:        r.Name,
		Members:     lo.Uniq(lo.Compact([]string(r.OccupantsIDs))),
		UnreadCount: max(r.UnreadMessagesCount, 0),
	}
	if r.Type == RecordPublicGroup {
		dialog.Type = PublicChannel
	}
	if r.Type == RecordPrivate {
		dialog.PeerID, _ = lo.Find(dialog.Members, func(id string) bool {
			return id != selfID
		})
	}
	if r.LastMessage != "" || r.LastMessageDateSent != 0 {
		dialog.LastMessage = &MessagePreview{
			Text:     r.LastMessage,
			SenderID: string(r.LastMessageUserID),
			SentAt:   time.Unix(r.LastMessageDateSent, 0).UTC(),
		}
	}
	return dialog
}

// IDList decodes user ids sent either as a JSON array of strings or numbers,
// or as a single comma separated string.
type IDList []string

func (l *IDList) UnmarshalJSON(data []byte) error {
	raw, err := decodeNumber(data)
	if err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*l = nil
	case string:
		parts := lo.Map(strings.Split(v, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
		*l = lo.Compact(parts)
	case []any:
		ids := make(IDList, 0, len(v))
		for _, item := range v {
			id, err := scalarID(item)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		*l = ids
	default:
		return fmt.Errorf("unexpected id list: %s", data)
	}
	return nil
}

// FlexID is a user or dialog id that the backend may send as a number.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	raw, err := decodeNumber(data)
	if err != nil {
		return err
	}
	if raw == nil {
		*f = ""
		return nil
	}
	id, err := scalarID(raw)
	if err != nil {
		return err
	}
	*f = FlexID(id)
	return nil
}

func decodeNumber(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func scalarID(v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case json.Number:
		return id.String(), nil
	default:
		return "", fmt.Errorf("unexpected id value: %v", v)
	}
}
