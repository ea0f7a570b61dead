package storage

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const dialogPrefix = "dialog:"

var _ contract.IDialogRepository = DialogRepository{}

// DialogRepository persists dialog snapshots in BadgerDB, one key per dialog.
type DialogRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewDialogRepository(db *badger.DB, log *slog.Logger, limitMessages *int) DialogRepository {
	return DialogRepository{db: db, log: log, limitMessages: limitMessages}
}

type DiskDialog struct {
	ID          string        `json:"id"`
	Type        int           `json:"type"`
	Name        string        `json:"name"`
	Members     []string      `json:"members"`
	PeerID      string        `json:"peer_id,omitempty"`
	UnreadCount int           `json:"unread_count"`
	Messages    []DiskMessage `json:"messages,omitempty"`
	LastMessage *DiskPreview  `json:"last_message,omitempty"`
	SavedAt     time.Time     `json:"saved_at"`
}

type DiskMessage struct {
	ID        string           `json:"id"`
	SenderID  string           `json:"sender_id"`
	Body      string           `json:"body"`
	Extension domain.Extension `json:"extension"`
	At        time.Time        `json:"at"`
}

type DiskPreview struct {
	Text     string    `json:"text"`
	SenderID string    `json:"sender_id"`
	SentAt   time.Time `json:"sent_at"`
}

func DialogKey(dialogID string) []byte {
	return []byte(dialogPrefix + dialogID)
}

// Save overwrites the stored snapshot. Only the newest limitMessages messages
// are kept when a limit is configured.
func (r DialogRepository) Save(dialog domain.Dialog) error {
	disk := fromDialog(dialog)
	if r.limitMessages != nil && len(disk.Messages) > *r.limitMessages {
		disk.Messages = disk.Messages[:*r.limitMessages]
	}
	bytes, err := json.Marshal(disk)
	if err != nil {
		return fmt.Errorf("failed to encode dialog %s: %w", dialog.ID, err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(DialogKey(dialog.ID), bytes)
	})
}

func (r DialogRepository) Get(dialogID string) (domain.Dialog, bool, error) {
	var disk DiskDialog
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(DialogKey(dialogID))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &disk)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Dialog{}, false, nil
	}
	if err != nil {
		return domain.Dialog{}, false, err
	}
	return toDialog(disk), true, nil
}

// All scans every stored dialog in key order.
func (r DialogRepository) All() ([]domain.Dialog, error) {
	var dialogs []domain.Dialog
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(dialogPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var disk DiskDialog
				if err := json.Unmarshal(v, &disk); err != nil {
					r.log.Warn("Skipping unreadable dialog", "key", string(item.Key()), "error", err)
					return nil
				}
				dialogs = append(dialogs, toDialog(disk))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during dialog scan: %w", err)
	}
	return dialogs, nil
}

func fromDialog(d domain.Dialog) DiskDialog {
	disk := DiskDialog{
		ID:          d.ID,
		Type:        int(d.Type),
		Name:        d.Name,
		Members:     d.Members,
		PeerID:      d.PeerID,
		UnreadCount: d.UnreadCount,
		SavedAt:     time.Now().UTC(),
		Messages: lo.Map(d.Messages, func(m domain.Message, _ int) DiskMessage {
			return DiskMessage{
				ID:        m.ID,
				SenderID:  m.SenderID,
				Body:      m.Body,
				Extension: m.Extension,
				At:        m.Timestamp,
			}
		}),
	}
	if d.LastMessage != nil {
		disk.LastMessage = &DiskPreview{
			Text:     d.LastMessage.Text,
			SenderID: d.LastMessage.SenderID,
			SentAt:   d.LastMessage.SentAt,
		}
	}
	return disk
}

func toDialog(disk DiskDialog) domain.Dialog {
	d := domain.Dialog{
		ID:          disk.ID,
		Type:        domain.DialogType(disk.Type),
		Name:        disk.Name,
		Members:     disk.Members,
		PeerID:      disk.PeerID,
		UnreadCount: disk.UnreadCount,
		Messages: lo.Map(disk.Messages, func(m DiskMessage, _ int) domain.Message {
			return domain.Message{
				ID:        m.ID,
				DialogID:  disk.ID,
				SenderID:  m.SenderID,
				Body:      m.Body,
				Extension: m.Extension,
				Timestamp: m.At,
			}
		}),
	}
	if disk.LastMessage != nil {
		d.LastMessage = &domain.MessagePreview{
			Text:     disk.LastMessage.Text,
			SenderID: disk.LastMessage.SenderID,
			SentAt:   disk.LastMessage.SentAt,
		}
	}
	return d
}
