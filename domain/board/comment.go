package board

import "fmt"

// Comment is an append-only log entry attached to an area. There is no
// update or delete; display order is timestamp descending.
type Comment struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

const CommentKeyPrefix = "comment:"

func CommentKey(areaID string, timestamp int64) string {
	return fmt.Sprintf("comment:%s:%d", areaID, timestamp)
}

func CommentAreaPrefix(areaID string) string {
	return "comment:" + areaID + ":"
}
