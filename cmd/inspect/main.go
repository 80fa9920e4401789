package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Offline inspector for the document tree: dumps the badger keys under a
// path prefix as a table. Run it against a stopped node (badger holds an
// exclusive lock).
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "chats/", "Path prefix to scan")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	header := color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf(" eight-chat tree dump — prefix %q ", *prefix))
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Path", "Kind", "Updated", "Detail"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				table.Append(toRow(key, v))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
}

func toRow(key string, val []byte) []string {
	var node map[string]any
	if err := json.Unmarshal(val, &node); err != nil {
		return []string{"/" + key, "RAW", "--:--:--", fmt.Sprintf("%d bytes", len(val))}
	}

	kind := "node"
	detail := ""
	updated := "--:--:--"

	switch {
	case strings.HasPrefix(key, "chats/"):
		kind = "chat"
		if members, ok := node["members"].(map[string]any); ok {
			ids := make([]string, 0, len(members))
			for id := range members {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			detail = strings.Join(ids, ", ")
		}
		if ts, ok := node["updatedAt"].(float64); ok {
			updated = time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05")
		}
	case strings.Contains(key, "/chats/"):
		kind = "join"
		if ts, ok := node["joinedAt"].(float64); ok {
			updated = time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05")
		}
	case strings.HasPrefix(key, "users/"):
		kind = "user"
		if name, ok := node["username"].(string); ok {
			detail = name
		}
	}

	return []string{"/" + key, kind, updated, detail}
}
