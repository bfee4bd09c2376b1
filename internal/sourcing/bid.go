package sourcing

import (
	"sort"
	"strings"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/simerr"
)

// BidFilter narrows the bid listing for one event. All conditions are
// AND-composed. StatusEquals values must come from the bid status set;
// an unknown status makes the whole query match nothing.
type BidFilter struct {
	IDEquals                        *int
	IntendToBidEquals               *bool
	IntendToBidNotEquals            *bool
	StatusEquals                    []string
	SupplierCompanyIDEquals         *int
	SupplierCompanyExternalIDEquals *string
	SubmittedAtFrom                 *string
	SubmittedAtTo                   *string
}

// IncludedResource is one related record attached to a bid row.
type IncludedResource struct {
	Type       string `json:"type"`
	ID         int    `json:"id"`
	Attributes any    `json:"attributes,omitempty"`
}

// BidResource is one bid row, optionally carrying included resources.
type BidResource struct {
	model.Bid
	Included []IncludedResource `json:"included,omitempty"`
}

// ListEventBids returns the bids on one RFP event. The listing is
// deliberately lenient: an unknown or non-RFP event, an out-of-range
// page, an unknown status value, or an unknown include resource all
// yield an empty list instead of an error.
func (s *Service) ListEventBids(eventID int, filter *BidFilter, page *Page, include *string) []BidResource {
	empty := []BidResource{}

	size, number, ok := page.resolve()
	if !ok {
		return empty
	}

	includes, ok := parseIncludes(include)
	if !ok {
		return empty
	}

	if filter != nil {
		for _, st := range filter.StatusEquals {
			if _, known := bidStatuses[st]; !known {
				return empty
			}
		}
	}

	s.store.RLock()
	defer s.store.RUnlock()

	ev, found := s.store.Events[eventID]
	if !found || ev.Type != EventTypeRFP {
		return empty
	}

	var matched []*model.Bid
	for _, b := range s.store.Bids {
		if b.EventID != eventID {
			continue
		}
		if filter != nil && !matchBid(b, filter) {
			continue
		}
		matched = append(matched, b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	start := number * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]BidResource, 0, end-start)
	for _, b := range matched[start:end] {
		row := BidResource{Bid: *b}
		if include != nil {
			row.Included = []IncludedResource{}
			for _, res := range includes {
				switch res {
				case "event":
					row.Included = append(row.Included, IncludedResource{
						Type: "events",
						ID:   ev.ID,
						Attributes: map[string]string{
							"name":   ev.Name,
							"status": ev.Status,
							"type":   ev.Type,
						},
					})
				case "supplier_company":
					row.Included = append(row.Included, IncludedResource{
						Type: "supplier_companies",
						ID:   b.SupplierID,
					})
				}
			}
		}
		out = append(out, row)
	}
	return out
}

func matchBid(b *model.Bid, f *BidFilter) bool {
	if f.IDEquals != nil && b.ID != *f.IDEquals {
		return false
	}
	if f.IntendToBidEquals != nil {
		if b.Attributes.IntendToBid == nil || *b.Attributes.IntendToBid != *f.IntendToBidEquals {
			return false
		}
	}
	if f.IntendToBidNotEquals != nil {
		if b.Attributes.IntendToBid != nil && *b.Attributes.IntendToBid == *f.IntendToBidNotEquals {
			return false
		}
	}
	if len(f.StatusEquals) > 0 && !contains(f.StatusEquals, b.Attributes.Status) {
		return false
	}
	if f.SupplierCompanyIDEquals != nil && b.SupplierID != *f.SupplierCompanyIDEquals {
		return false
	}
	// Bids carry no supplier external ID, so this condition can never hold.
	if f.SupplierCompanyExternalIDEquals != nil {
		return false
	}
	if f.SubmittedAtFrom != nil {
		if b.Attributes.SubmittedAt == nil || *b.Attributes.SubmittedAt < *f.SubmittedAtFrom {
			return false
		}
	}
	if f.SubmittedAtTo != nil {
		if b.Attributes.SubmittedAt == nil || *b.Attributes.SubmittedAt > *f.SubmittedAtTo {
			return false
		}
	}
	return true
}

// parseIncludes splits the comma-separated include string. A nil or
// empty string yields no resources; an unknown resource fails.
func parseIncludes(include *string) ([]string, bool) {
	if include == nil || *include == "" {
		return nil, true
	}
	var out []string
	for _, part := range strings.Split(*include, ",") {
		part = strings.TrimSpace(part)
		if part != "event" && part != "supplier_company" {
			return nil, false
		}
		out = append(out, part)
	}
	return out, true
}

// LineItemParams is one priced line on a new bid.
type LineItemParams struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// SubmitBidParams creates a bid on an RFP event.
type SubmitBidParams struct {
	EventID    int
	SupplierID int
	BidAmount  float64
	LineItems  []LineItemParams
}

// SubmitBidResult carries the created bid and its line items.
type SubmitBidResult struct {
	Bid       model.Bid           `json:"bid"`
	LineItems []model.BidLineItem `json:"line_items"`
}

func (s *Service) SubmitBid(p SubmitBidParams) (SubmitBidResult, error) {
	var empty SubmitBidResult

	if p.SupplierID <= 0 {
		return empty, simerr.Validation("Supplier ID must be a positive integer.")
	}
	if p.BidAmount < 0 {
		return empty, simerr.Validation("Bid amount must be a non-negative number.")
	}
	for _, li := range p.LineItems {
		if strings.TrimSpace(li.Description) == "" {
			return empty, simerr.Validation("Line item description cannot be empty.")
		}
		if li.Quantity <= 0 {
			return empty, simerr.Validation("Line item quantity must be a positive integer.")
		}
		if li.UnitPrice < 0 {
			return empty, simerr.Validation("Line item unit price must be a non-negative number.")
		}
	}

	s.store.Lock()
	defer s.store.Unlock()

	ev, ok := s.store.Events[p.EventID]
	if !ok {
		return empty, simerr.NotFound("Event with ID %d not found.", p.EventID)
	}
	if ev.Type != EventTypeRFP {
		return empty, simerr.InvalidRequest("Bids can only be submitted for RFP events.")
	}

	now := ids.NowISO()
	intend := true
	bid := &model.Bid{
		ID:         s.store.NextBid(),
		Type:       "bids",
		EventID:    p.EventID,
		SupplierID: p.SupplierID,
		BidAmount:  p.BidAmount,
		Attributes: model.BidAttributes{
			IntendToBid:           &intend,
			IntendToBidAnsweredAt: &now,
			Status:                "submitted",
			SubmittedAt:           &now,
		},
	}
	s.store.Bids[bid.ID] = bid

	items := make([]model.BidLineItem, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		item := &model.BidLineItem{
			ID:          s.store.NextBidLineItem(),
			Type:        "line_items",
			BidID:       bid.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		}
		s.store.BidLineItems[item.ID] = item
		items = append(items, *item)
	}

	return SubmitBidResult{Bid: *bid, LineItems: items}, nil
}

// ListBidLineItems returns the line items on one bid, offset paged.
// Unknown bids and out-of-range pages yield an empty list.
func (s *Service) ListBidLineItems(bidID int, page *Page) []model.BidLineItem {
	empty := []model.BidLineItem{}

	size, number, ok := page.resolve()
	if !ok {
		return empty
	}

	s.store.RLock()
	defer s.store.RUnlock()

	if _, found := s.store.Bids[bidID]; !found {
		return empty
	}

	var matched []model.BidLineItem
	for _, li := range s.store.BidLineItems {
		if li.BidID == bidID {
			matched = append(matched, *li)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	start := number * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return append(empty, matched[start:end]...)
}
