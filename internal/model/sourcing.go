package model

// SourcingEvent is a procurement event. IDs are auto-incremented
// integers, matching the simulated platform's numeric keyspace.
type SourcingEvent struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// BidAttributes carries the mutable state of a supplier bid.
type BidAttributes struct {
	IntendToBid           *bool   `json:"intend_to_bid"`
	IntendToBidAnsweredAt *string `json:"intend_to_bid_answered_at"`
	Status                string  `json:"status"`
	SubmittedAt           *string `json:"submitted_at"`
	ResubmittedAt         *string `json:"resubmitted_at"`
}

// Bid is a supplier's offer on an RFP event.
type Bid struct {
	ID         int           `json:"id"`
	Type       string        `json:"type"`
	EventID    int           `json:"event_id"`
	SupplierID int           `json:"supplier_id"`
	BidAmount  float64       `json:"bid_amount"`
	Attributes BidAttributes `json:"attributes"`
}

// BidLineItem is one priced line inside a bid.
type BidLineItem struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	BidID       int     `json:"bid_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}
