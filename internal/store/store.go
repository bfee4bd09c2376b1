// Package store holds the simulator state: named collections of records
// keyed by ID, guarded by a single RWMutex. Operations lock the store
// for the whole call so a failed validation never leaves a partial
// mutation visible.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"saas-sim/internal/model"
)

// defaultUserJID identifies the simulated account that sends outgoing
// messages. Snapshots may override it.
const defaultUserJID = "10000000000@s.whatsapp.net"

// Store is the whole simulator state. One instance is injected into
// every operation service; there is no package-level state.
type Store struct {
	sync.RWMutex

	Customers      map[string]*model.Customer      `json:"customers"`
	Products       map[string]*model.Product       `json:"products"`
	Prices         map[string]*model.Price         `json:"prices"`
	PaymentLinks   map[string]*model.PaymentLink   `json:"payment_links"`
	PaymentIntents map[string]*model.PaymentIntent `json:"payment_intents"`
	Refunds        map[string]*model.Refund        `json:"refunds"`
	Invoices       map[string]*model.Invoice       `json:"invoices"`
	InvoiceItems   map[string]*model.InvoiceItem   `json:"invoice_items"`
	Coupons        map[string]*model.Coupon        `json:"coupons"`
	Subscriptions  map[string]*model.Subscription  `json:"subscriptions"`
	Disputes       map[string]*model.Dispute       `json:"disputes"`

	Chats          map[string]*model.Chat `json:"chats"`
	CurrentUserJID string                 `json:"current_user_jid"`

	Events       map[int]*model.SourcingEvent `json:"events"`
	Bids         map[int]*model.Bid           `json:"bids"`
	BidLineItems map[int]*model.BidLineItem   `json:"bid_line_items"`

	NextEventID       int `json:"next_event_id"`
	NextBidID         int `json:"next_bid_id"`
	NextBidLineItemID int `json:"next_bid_line_item_id"`
}

// New returns an empty store with every collection initialized.
func New() *Store {
	return &Store{
		Customers:         map[string]*model.Customer{},
		Products:          map[string]*model.Product{},
		Prices:            map[string]*model.Price{},
		PaymentLinks:      map[string]*model.PaymentLink{},
		PaymentIntents:    map[string]*model.PaymentIntent{},
		Refunds:           map[string]*model.Refund{},
		Invoices:          map[string]*model.Invoice{},
		InvoiceItems:      map[string]*model.InvoiceItem{},
		Coupons:           map[string]*model.Coupon{},
		Subscriptions:     map[string]*model.Subscription{},
		Disputes:          map[string]*model.Dispute{},
		Chats:             map[string]*model.Chat{},
		CurrentUserJID:    defaultUserJID,
		Events:            map[int]*model.SourcingEvent{},
		Bids:              map[int]*model.Bid{},
		BidLineItems:      map[int]*model.BidLineItem{},
		NextEventID:       1,
		NextBidID:         1,
		NextBidLineItemID: 1,
	}
}

// NextEvent returns the next auto-increment event ID.
// Callers must hold the write lock.
func (s *Store) NextEvent() int {
	id := s.NextEventID
	s.NextEventID++
	return id
}

// NextBid returns the next auto-increment bid ID.
// Callers must hold the write lock.
func (s *Store) NextBid() int {
	id := s.NextBidID
	s.NextBidID++
	return id
}

// NextBidLineItem returns the next auto-increment bid line item ID.
// Callers must hold the write lock.
func (s *Store) NextBidLineItem() int {
	id := s.NextBidLineItemID
	s.NextBidLineItemID++
	return id
}

// SaveJSON writes the whole store to path as one JSON document.
// There is no atomic rename and no schema version tag.
func (s *Store) SaveJSON(path string) error {
	s.RLock()
	defer s.RUnlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// LoadJSON merges the snapshot at path into the store, replacing each
// collection the file contains and leaving the rest untouched. A
// missing file is a no-op.
func (s *Store) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store: %w", err)
	}
	return s.merge(data)
}

func (s *Store) merge(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode store: %w", err)
	}

	loaded := New()
	if err := json.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("decode store: %w", err)
	}

	s.Lock()
	defer s.Unlock()

	replace := func(key string, apply func()) {
		if _, ok := raw[key]; ok {
			apply()
		}
	}
	replace("customers", func() { s.Customers = loaded.Customers })
	replace("products", func() { s.Products = loaded.Products })
	replace("prices", func() { s.Prices = loaded.Prices })
	replace("payment_links", func() { s.PaymentLinks = loaded.PaymentLinks })
	replace("payment_intents", func() { s.PaymentIntents = loaded.PaymentIntents })
	replace("refunds", func() { s.Refunds = loaded.Refunds })
	replace("invoices", func() { s.Invoices = loaded.Invoices })
	replace("invoice_items", func() { s.InvoiceItems = loaded.InvoiceItems })
	replace("coupons", func() { s.Coupons = loaded.Coupons })
	replace("subscriptions", func() { s.Subscriptions = loaded.Subscriptions })
	replace("disputes", func() { s.Disputes = loaded.Disputes })
	replace("chats", func() { s.Chats = loaded.Chats })
	replace("current_user_jid", func() { s.CurrentUserJID = loaded.CurrentUserJID })
	replace("events", func() { s.Events = loaded.Events })
	replace("bids", func() { s.Bids = loaded.Bids })
	replace("bid_line_items", func() { s.BidLineItems = loaded.BidLineItems })
	replace("next_event_id", func() { s.NextEventID = loaded.NextEventID })
	replace("next_bid_id", func() { s.NextBidID = loaded.NextBidID })
	replace("next_bid_line_item_id", func() { s.NextBidLineItemID = loaded.NextBidLineItemID })
	return nil
}
