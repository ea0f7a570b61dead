package main

import (
	"chat-sdk/infrastructure/storage"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/dialogs", "Path to badger DB")
	flag.Parse()

	// BypassLockGuard allows reading while a session holds the lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := storage.NewDialogRepository(db, slog.Default(), nil)
	dialogs, err := repository.All()
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Name", "Peer", "Members", "Unread", "Messages", "Last message", "At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, d := range dialogs {
		last, at := "", ""
		if d.LastMessage != nil {
			last = d.LastMessage.Text
			if len(last) > 40 {
				last = last[:40] + "..."
			}
			at = d.LastMessage.SentAt.Format("2006-01-02 15:04:05")
		}
		table.Append([]string{
			string(storage.DialogKey(d.ID)),
			d.Type.String(),
			d.Name,
			d.PeerID,
			strconv.Itoa(len(d.Members)),
			strconv.Itoa(d.UnreadCount),
			strconv.Itoa(len(d.Messages)),
			last,
			at,
		})
	}
	table.Render()
}
