package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// BoardMapper renders board records in the badger debug inspector. Values
// are JSON documents, so the summary is extracted generically per key kind.
func BoardMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var record map[string]any
	if err := json.Unmarshal(val, &record); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	switch {
	case strings.HasPrefix(key, "project-area:"):
		row.Type = "AREA"
		row.Detail = fmt.Sprintf("%v (%v%%)", record["name"], record["progress"])
	case strings.HasPrefix(key, "subpoint:"):
		row.Type = "SUBPOINT"
		detail := fmt.Sprintf("%v", record["title"])
		if completed, _ := record["completed"].(bool); completed {
			detail += " [done]"
		}
		if dependsOn, _ := record["dependsOn"].(string); dependsOn != "" {
			detail += " <- " + dependsOn
		}
		row.Detail = detail
	case strings.HasPrefix(key, "comment:"):
		row.Type = "COMMENT"
		row.Detail = fmt.Sprintf("%v: %v", record["username"], record["message"])
	case strings.HasPrefix(key, "user:"):
		row.Type = "USER"
		row.Detail = fmt.Sprintf("%v", record["username"])
	}

	return row
}
