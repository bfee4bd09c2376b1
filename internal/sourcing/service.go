// Package sourcing simulates a Workday-like strategic sourcing platform:
// integer-keyed events, supplier bids on RFP events, and bid line items,
// all with JSON:API style type tags.
package sourcing

import (
	"saas-sim/internal/store"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	EventTypeRFP     = "RFP"
	EventTypeAuction = "AUCTION"
)

// bidStatuses is the closed set of bid lifecycle states.
var bidStatuses = map[string]struct{}{
	"award_retracted":     {},
	"awarded":             {},
	"draft":               {},
	"rejected":            {},
	"rejection_retracted": {},
	"resubmitted":         {},
	"revising":            {},
	"submitted":           {},
	"unclaimed":           {},
	"update_requested":    {},
}

// Service implements the sourcing operations against a shared store.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Page selects one offset page. Nil fields take the defaults: size 10,
// number 0.
type Page struct {
	Size   *int
	Number *int
}

// resolve returns the effective size and number, or ok=false when the
// page is outside the accepted range.
func (p *Page) resolve() (size, number int, ok bool) {
	size, number = defaultPageSize, 0
	if p != nil {
		if p.Size != nil {
			size = *p.Size
		}
		if p.Number != nil {
			number = *p.Number
		}
	}
	if size < 1 || size > maxPageSize || number < 0 {
		return 0, 0, false
	}
	return size, number, true
}
