// Package ui renders view events on a terminal.
package ui

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var _ contract.EventSink = (*Console)(nil)

var (
	dialogStyle  = color.New(color.FgCyan, color.OpBold)
	messageStyle = color.New(color.FgGreen)
	badgeStyle   = color.New(color.BgBlack, color.FgYellow)
	typingStyle  = color.New(color.FgGray)
	offlineStyle = color.New(color.BgRed, color.FgWhite)
	onlineStyle  = color.New(color.FgGreen, color.OpBold)
)

// Console prints one line per view event.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Name() string { return "console" }

func (c *Console) Consume(_ context.Context, e event.ViewEvent) error {
	var line string
	switch evt := e.(type) {
	case event.DialogUpdated:
		line = dialogStyle.Render(fmt.Sprintf("[%s] %s", evt.Dialog.Type, displayName(evt.Dialog)))
		if evt.Dialog.LastMessage != nil {
			line += " " + evt.Dialog.LastMessage.Text
		}
	case event.MessageAppended:
		line = messageStyle.Render(evt.Message.SenderID+" > ") + evt.Message.Body
	case event.UnreadCountChanged:
		line = badgeStyle.Render(fmt.Sprintf("%s (%d unread)", evt.DialogID, evt.Count))
	case event.TypingChanged:
		if !evt.IsTyping {
			return nil
		}
		line = typingStyle.Render(evt.SenderID + " is typing...")
	case event.ConnectivityChanged:
		if evt.Online {
			line = onlineStyle.Render("Online")
		} else {
			line = offlineStyle.Render("No internet connection")
		}
	case event.ReconnectFailed:
		line = offlineStyle.Render("Reconnection failed, messages will not be received")
	default:
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, line)
	return err
}

// RenderDialogs prints the dialog list as a table.
func (c *Console) RenderDialogs(dialogs []domain.Dialog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"ID", "Type", "Name", "Members", "Unread", "Last message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, d := range dialogs {
		last := ""
		if d.LastMessage != nil {
			last = d.LastMessage.Text
		}
		table.Append([]string{
			d.ID,
			d.Type.String(),
			displayName(d),
			strconv.Itoa(len(d.Members)),
			strconv.Itoa(d.UnreadCount),
			last,
		})
	}
	table.Render()
}

// displayName falls back on the peer for unnamed private chats.
func displayName(d domain.Dialog) string {
	if d.Name != "" {
		return d.Name
	}
	if d.PeerID != "" {
		return d.PeerID
	}
	return d.ID
}
