package payments

import (
	"fmt"
	"strings"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

const secondsPerDay = 86_400

type CreateInvoiceParams struct {
	Customer     string `json:"customer"`
	DaysUntilDue *int   `json:"days_until_due"`
}

func (s *Service) CreateInvoice(p CreateInvoiceParams) (*model.Invoice, error) {
	if strings.TrimSpace(p.Customer) == "" {
		return nil, simerr.InvalidRequest("Customer ID cannot be empty.")
	}
	if p.DaysUntilDue != nil && *p.DaysUntilDue < 0 {
		return nil, simerr.InvalidRequest("Days until due cannot be negative.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.store.Customers[p.Customer]; !ok {
		return nil, simerr.NotFound("Customer with ID '%s' not found.", p.Customer)
	}

	created := ids.Now()
	inv := &model.Invoice{
		ID:       ids.New(ids.InvoicePrefix),
		Object:   "invoice",
		Customer: p.Customer,
		Status:   "draft",
		Currency: "usd",
		Created:  created,
		Lines:    model.NewList[model.InvoiceLineItem](nil, false),
	}
	if p.DaysUntilDue != nil {
		due := created + int64(*p.DaysUntilDue)*secondsPerDay
		inv.DueDate = &due
	}
	s.store.Invoices[inv.ID] = inv
	return inv, nil
}

type CreateInvoiceItemParams struct {
	Customer string `json:"customer"`
	Price    string `json:"price"`
	Invoice  string `json:"invoice"`
}

func (s *Service) CreateInvoiceItem(p CreateInvoiceItemParams) (*model.InvoiceItem, error) {
	if strings.TrimSpace(p.Customer) == "" {
		return nil, simerr.InvalidRequest("Customer ID must be a non-empty string.")
	}
	if strings.TrimSpace(p.Price) == "" {
		return nil, simerr.InvalidRequest("Price ID must be a non-empty string.")
	}
	if strings.TrimSpace(p.Invoice) == "" {
		return nil, simerr.InvalidRequest("Invoice ID must be a non-empty string.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.store.Customers[p.Customer]; !ok {
		return nil, simerr.NotFound("Customer with ID '%s' not found.", p.Customer)
	}
	price, ok := s.store.Prices[p.Price]
	if !ok {
		return nil, simerr.NotFound("Price with ID '%s' not found.", p.Price)
	}
	inv, ok := s.store.Invoices[p.Invoice]
	if !ok {
		return nil, simerr.NotFound("Invoice with ID '%s' not found.", p.Invoice)
	}
	if !price.Active {
		return nil, simerr.InvalidRequest("Price with ID '%s' is not active and cannot be used.", p.Price)
	}

	item := &model.InvoiceItem{
		ID:       ids.New(ids.InvoicePrefix),
		Object:   "invoiceitem",
		Customer: p.Customer,
		Invoice:  p.Invoice,
		Price: model.InvoiceItemPrice{
			ID:         price.ID,
			Product:    price.Product,
			UnitAmount: price.UnitAmount,
			Currency:   price.Currency,
		},
		Amount:   price.UnitAmount,
		Currency: price.Currency,
		Quantity: 1,
	}
	s.store.InvoiceItems[item.ID] = item

	inv.Lines.Data = append(inv.Lines.Data, model.InvoiceLineItem{
		ID:          item.ID,
		Amount:      item.Amount,
		Quantity:    item.Quantity,
		Price:       model.InvoiceLinePrice{ID: price.ID, Product: price.Product},
		Description: fmt.Sprintf("Item from price %s", price.ID),
	})
	inv.Total += item.Amount
	inv.AmountDue += item.Amount
	return item, nil
}

// FinalizeInvoice moves a draft invoice to open, recomputing totals and
// lines from the invoice items bound to it.
func (s *Service) FinalizeInvoice(invoiceID string) (*model.Invoice, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return nil, simerr.InvalidRequest("invoice must be a string and not empty")
	}

	s.store.Lock()
	defer s.store.Unlock()

	inv, ok := s.store.Invoices[invoiceID]
	if !ok {
		return nil, simerr.NotFound("invoice %s does not exist", invoiceID)
	}
	if inv.Status != "draft" {
		return nil, simerr.InvalidRequest("invoice must be in draft status to be finalized")
	}

	var items []*model.InvoiceItem
	for _, item := range s.store.InvoiceItems {
		if item.Invoice == invoiceID {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, simerr.InvalidRequest("invoice cannot be finalized without line items")
	}

	var total int64
	lines := make([]model.InvoiceLineItem, 0, len(items))
	for _, item := range items {
		total += item.Amount
		lines = append(lines, model.InvoiceLineItem{
			ID:          item.ID,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
			Price:       model.InvoiceLinePrice{ID: item.Price.ID, Product: item.Price.Product},
			Description: fmt.Sprintf("Item from price %s", item.Price.ID),
		})
	}
	inv.Total = total
	inv.AmountDue = total
	inv.Lines = model.NewList(lines, false)
	inv.Status = "open"
	return inv, nil
}

// CreatedFilter is the created-range filter of ListInvoices; all bounds
// are ANDed.
type CreatedFilter struct {
	Gte *int64 `json:"gte"`
	Lte *int64 `json:"lte"`
	Gt  *int64 `json:"gt"`
	Lt  *int64 `json:"lt"`
}

func (f *CreatedFilter) matches(created int64) bool {
	if f.Gte != nil && created < *f.Gte {
		return false
	}
	if f.Lte != nil && created > *f.Lte {
		return false
	}
	if f.Gt != nil && created <= *f.Gt {
		return false
	}
	if f.Lt != nil && created >= *f.Lt {
		return false
	}
	return true
}

type ListInvoicesParams struct {
	Customer      *string        `json:"customer"`
	Status        *string        `json:"status"`
	Created       *CreatedFilter `json:"created"`
	StartingAfter *string        `json:"starting_after"`
	EndingBefore  *string        `json:"ending_before"`
	Limit         *int           `json:"limit"`
}

// ListInvoices returns invoices in ascending created order, oldest
// first. Both cursors may be combined and an unknown cursor yields an
// empty page; this endpoint diverges from the others on purpose.
func (s *Service) ListInvoices(p ListInvoicesParams) (model.List[*model.Invoice], error) {
	var zero model.List[*model.Invoice]

	if p.Customer != nil && strings.TrimSpace(*p.Customer) == "" {
		return zero, simerr.InvalidRequest("Customer cannot be empty.")
	}
	if p.Status != nil && !validate.OneOf(*p.Status, "draft", "open", "paid", "uncollectible", "void") {
		return zero, simerr.InvalidRequest(
			"Invalid status: %s. Allowed values are: draft, open, paid, uncollectible, void.", *p.Status)
	}
	if p.StartingAfter != nil && strings.TrimSpace(*p.StartingAfter) == "" {
		return zero, simerr.InvalidRequest("Starting after cannot be empty.")
	}
	if p.EndingBefore != nil && strings.TrimSpace(*p.EndingBefore) == "" {
		return zero, simerr.InvalidRequest("Ending before cannot be empty.")
	}
	limit := -1
	if p.Limit != nil {
		var err error
		if limit, err = validate.LimitSplit(p.Limit); err != nil {
			return zero, err
		}
	}

	s.store.RLock()
	defer s.store.RUnlock()

	if p.Customer != nil {
		if _, ok := s.store.Customers[*p.Customer]; !ok {
			return zero, simerr.NotFound("Customer %s not found.", *p.Customer)
		}
	}

	var invoices []*model.Invoice
	for _, inv := range s.store.Invoices {
		if p.Customer != nil && inv.Customer != *p.Customer {
			continue
		}
		if p.Status != nil && inv.Status != *p.Status {
			continue
		}
		if p.Created != nil && !p.Created.matches(inv.Created) {
			continue
		}
		invoices = append(invoices, inv)
	}
	invoices = sortedByCreatedAsc(invoices,
		func(inv *model.Invoice) int64 { return inv.Created },
		func(inv *model.Invoice) string { return inv.ID })

	invID := func(inv *model.Invoice) string { return inv.ID }
	if p.StartingAfter != nil {
		var found bool
		if invoices, found = page.After(invoices, invID, *p.StartingAfter); !found {
			return newList[*model.Invoice](nil, false), nil
		}
	}
	if p.EndingBefore != nil {
		var found bool
		if invoices, found = page.Before(invoices, invID, *p.EndingBefore); !found {
			return newList[*model.Invoice](nil, false), nil
		}
	}

	data, hasMore := page.Window(invoices, limit)
	return newList(data, hasMore), nil
}
