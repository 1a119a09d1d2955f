package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Offline dump of board records. The server must be stopped first: badger
// holds an exclusive directory lock.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "subpoint:", "Prefix to scan (project-area:, subpoint:, comment:, user:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Created", "Title / Name", "Completed", "Depends On", "Responsible", "By"})
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
			err := item.Value(func(v []byte) error {
				var record map[string]any
				if err := json.Unmarshal(v, &record); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				title, _ := record["title"].(string)
				if title == "" {
					title, _ = record["name"].(string)
				}
				if title == "" {
					title, _ = record["message"].(string)
				}

				completed := ""
				if done, ok := record["completed"].(bool); ok {
					completed = fmt.Sprintf("%t", done)
				}
				if progress, ok := record["progress"].(float64); ok {
					completed = fmt.Sprintf("%d%%", int(progress))
				}

				created := ""
				if ts, ok := record["timestamp"].(float64); ok {
					created = time.UnixMilli(int64(ts)).Format("2006-01-02 15:04:05")
				}

				dependsOn, _ := record["dependsOn"].(string)
				responsible, _ := record["responsibleUser"].(string)
				createdBy, _ := record["createdBy"].(string)
				if createdBy == "" {
					createdBy, _ = record["username"].(string)
				}

				table.Append([]string{
					string(item.Key()),
					created,
					title,
					completed,
					dependsOn,
					responsible,
					createdBy,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}
