package payments

import (
	"fmt"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

type CreatePaymentLinkParams struct {
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

func (s *Service) CreatePaymentLink(p CreatePaymentLinkParams) (*model.PaymentLink, error) {
	if p.Quantity <= 0 {
		return nil, simerr.InvalidRequest("Quantity must be greater than 0.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	price, ok := s.store.Prices[p.Price]
	if !ok {
		return nil, simerr.NotFound("No such price: '%s'", p.Price)
	}
	if !price.Active {
		return nil, simerr.InvalidRequest("Price '%s' is not active and cannot be used to create a payment link.", p.Price)
	}

	id := ids.New(ids.PaymentLinkPrefix)
	link := &model.PaymentLink{
		ID:     id,
		Object: "payment_link",
		Active: true,
		URL:    fmt.Sprintf("https://pay.example.com/c/%s", id),
		LineItems: model.NewList([]model.PaymentLinkLineItem{{
			ID:     ids.New(ids.PaymentLinkLineItemPrefix),
			Object: "item",
			Price: model.PaymentLinkPrice{
				ID:      price.ID,
				Product: price.Product,
			},
			Quantity: p.Quantity,
		}}, false),
		AfterCompletion: model.AfterCompletion{Type: "hosted_confirmation"},
		Created:         ids.Now(),
	}
	s.store.PaymentLinks[link.ID] = link
	return link, nil
}

type ListPaymentLinksParams struct {
	Limit *int `json:"limit"`
}

func (s *Service) ListPaymentLinks(p ListPaymentLinksParams) (model.List[*model.PaymentLink], error) {
	var zero model.List[*model.PaymentLink]

	limit, err := validate.LimitBetween(p.Limit)
	if err != nil {
		return zero, err
	}

	s.store.RLock()
	defer s.store.RUnlock()

	links := make([]*model.PaymentLink, 0, len(s.store.PaymentLinks))
	for _, l := range s.store.PaymentLinks {
		links = append(links, l)
	}
	links = sortedByCreatedDesc(links,
		func(l *model.PaymentLink) int64 { return l.Created },
		func(l *model.PaymentLink) string { return l.ID })

	data, hasMore := page.Window(links, limit)
	return newList(data, hasMore), nil
}
