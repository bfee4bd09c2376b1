package payments

import (
	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

type CreateRefundParams struct {
	PaymentIntent string  `json:"payment_intent"`
	Amount        *int64  `json:"amount"`
	Reason        *string `json:"reason"`
}

func (s *Service) CreateRefund(p CreateRefundParams) (*model.Refund, error) {
	if p.Amount != nil && *p.Amount <= 0 {
		return nil, simerr.InvalidRequest("Refund amount must be a positive integer.")
	}
	if p.Reason != nil && !validate.OneOf(*p.Reason, "duplicate", "fraudulent", "requested_by_customer") {
		return nil, simerr.InvalidRequest("Reason must be one of: duplicate, fraudulent, requested_by_customer.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	pi, ok := s.store.PaymentIntents[p.PaymentIntent]
	if !ok {
		return nil, simerr.NotFound("No such payment intent: '%s'", p.PaymentIntent)
	}
	if pi.Status != "succeeded" {
		return nil, simerr.InvalidRequest("Payment intent must be succeeded to be refunded.")
	}

	remaining := pi.Amount
	for _, r := range s.store.Refunds {
		if r.PaymentIntent == pi.ID && r.Status == "succeeded" {
			remaining -= r.Amount
		}
	}
	if remaining <= 0 {
		return nil, simerr.InvalidRequest("Payment intent '%s' has already been fully refunded.", pi.ID)
	}

	amount := remaining
	if p.Amount != nil {
		amount = *p.Amount
	}
	if amount > remaining {
		return nil, simerr.InvalidRequest(
			"Refund amount of %d exceeds the remaining refundable amount of %d.", amount, remaining)
	}

	refund := &model.Refund{
		ID:            ids.New(ids.RefundPrefix),
		Object:        "refund",
		Amount:        amount,
		Currency:      pi.Currency,
		PaymentIntent: pi.ID,
		Reason:        p.Reason,
		Status:        "succeeded",
		Created:       ids.Now(),
	}
	s.store.Refunds[refund.ID] = refund
	return refund, nil
}

type ListRefundsParams struct {
	PaymentIntent *string `json:"payment_intent"`
	Limit         *int    `json:"limit"`
}

func (s *Service) ListRefunds(p ListRefundsParams) (model.List[*model.Refund], error) {
	var zero model.List[*model.Refund]

	limit, err := validate.LimitBetween(p.Limit)
	if err != nil {
		return zero, err
	}

	s.store.RLock()
	defer s.store.RUnlock()

	var refunds []*model.Refund
	for _, r := range s.store.Refunds {
		if p.PaymentIntent != nil && r.PaymentIntent != *p.PaymentIntent {
			continue
		}
		refunds = append(refunds, r)
	}
	refunds = sortedByCreatedDesc(refunds,
		func(r *model.Refund) int64 { return r.Created },
		func(r *model.Refund) string { return r.ID })

	data, hasMore := page.Window(refunds, limit)
	return newList(data, hasMore), nil
}
