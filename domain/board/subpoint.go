package board

import (
	"fmt"
	"strconv"
	"strings"
)

// SubPoint is a single task inside an area. The area is encoded in the
// identifier and is immutable after creation. DependsOn may reference a
// sub-point of any area; the reference is a weak pointer resolved lazily
// against the full universe of sub-points, never a live object link.
type SubPoint struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Completed       bool   `json:"completed"`
	CreatedBy       string `json:"createdBy"`
	Timestamp       int64  `json:"timestamp"`
	DependsOn       string `json:"dependsOn,omitempty"`
	ResponsibleUser string `json:"responsibleUser,omitempty"`
}

const SubPointKeyPrefix = "subpoint:"

func SubPointKey(areaID string, timestamp int64) string {
	return fmt.Sprintf("subpoint:%s:%d", areaID, timestamp)
}

// SubPointAreaPrefix is the scan prefix for one area's sub-points.
func SubPointAreaPrefix(areaID string) string {
	return "subpoint:" + areaID + ":"
}

// ParseSubPointID splits a sub-point identifier into its area and creation
// timestamp (epoch milliseconds).
func ParseSubPointID(id string) (areaID string, timestamp int64, err error) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 || parts[0] != "subpoint" || parts[1] == "" {
		return "", 0, fmt.Errorf("malformed sub-point id %q", id)
	}
	timestamp, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed sub-point id %q: %w", id, err)
	}
	return parts[1], timestamp, nil
}

// Blocked reports the derived display state: incomplete with an unsatisfied
// dependency. It is computed per query and never stored.
func Blocked(sp SubPoint, universe map[string]SubPoint) bool {
	return !sp.Completed && !Satisfied(sp, universe)
}
