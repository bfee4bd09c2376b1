// Package messaging simulates a WhatsApp-like chat platform: chats keyed
// by JID with their messages inline, offset pagination, and text search.
package messaging

import (
	"regexp"
	"time"

	"saas-sim/internal/store"
)

const (
	defaultChatLimit      = 20
	defaultMessageLimit   = 20
	defaultContextSize    = 1
	defaultMessageContext = 5
	maxContextMessages    = 100

	groupJIDSuffix = "@g.us"
)

var (
	jidPattern   = regexp.MustCompile(`^\d+(-?\d*)?@(s\.whatsapp\.net|g\.us)$`)
	phonePattern = regexp.MustCompile(`^\+\d{7,15}$`)
)

// Service implements the chat operations against a shared store.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

// boundLayout is the only accepted format for after/before bounds.
const boundLayout = "2006-01-02T15:04:05Z"

// parseTimestamp reads a stored message or chat timestamp. Offset and
// zone-less forms are tolerated because snapshots may carry either.
func parseTimestamp(ts string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", ts); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
