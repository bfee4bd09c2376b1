package payments

import (
	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

const (
	minIntentAmount = 50
	maxIntentAmount = 99_999_999
)

type CreatePaymentIntentParams struct {
	Amount             int64             `json:"amount"`
	Currency           string            `json:"currency"`
	Customer           *string           `json:"customer"`
	PaymentMethodTypes []string          `json:"payment_method_types"`
	CaptureMethod      *string           `json:"capture_method"`
	Metadata           map[string]string `json:"metadata"`
}

func (s *Service) CreatePaymentIntent(p CreatePaymentIntentParams) (*model.PaymentIntent, error) {
	if p.Amount < minIntentAmount {
		return nil, simerr.InvalidRequest("Amount must be at least 50 cents (or equivalent in charge currency).")
	}
	if p.Amount > maxIntentAmount {
		return nil, simerr.InvalidRequest("Amount value supports up to eight digits.")
	}

	currency, issue := validate.Currency(p.Currency)
	if issue == validate.CurrencyEmpty || issue == validate.CurrencyMalformed {
		return nil, simerr.InvalidRequest("Currency must be a three-letter ISO currency code.")
	}
	if issue == validate.CurrencyUnsupported {
		return nil, simerr.InvalidRequest("Unsupported currency: '%s'. Supported currencies are: %s.",
			p.Currency, validate.SupportedCurrencyList())
	}

	methodTypes := p.PaymentMethodTypes
	if methodTypes == nil {
		methodTypes = []string{"card"}
	}
	if len(methodTypes) == 0 {
		return nil, simerr.InvalidRequest("At least one payment method type must be specified.")
	}
	for i, mt := range methodTypes {
		if mt == "" {
			return nil, simerr.InvalidRequest("Payment method type at index %d cannot be empty.", i)
		}
	}

	captureMethod := "automatic_async"
	if p.CaptureMethod != nil {
		if !validate.OneOf(*p.CaptureMethod, "automatic", "automatic_async", "manual") {
			return nil, simerr.InvalidRequest("Capture method must be one of: automatic, automatic_async, manual")
		}
		captureMethod = *p.CaptureMethod
	}

	s.store.Lock()
	defer s.store.Unlock()

	if p.Customer != nil {
		if _, ok := s.store.Customers[*p.Customer]; !ok {
			return nil, simerr.NotFound("No such customer: '%s'", *p.Customer)
		}
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	pi := &model.PaymentIntent{
		ID:                 ids.New(ids.PaymentIntentPrefix),
		Object:             "payment_intent",
		Amount:             p.Amount,
		Currency:           currency,
		Customer:           p.Customer,
		Status:             "requires_payment_method",
		PaymentMethodTypes: methodTypes,
		CaptureMethod:      captureMethod,
		Created:            ids.Now(),
		Metadata:           metadata,
	}
	s.store.PaymentIntents[pi.ID] = pi
	return pi, nil
}

type ListPaymentIntentsParams struct {
	Customer      *string `json:"customer"`
	Limit         *int    `json:"limit"`
	StartingAfter *string `json:"starting_after"`
	EndingBefore  *string `json:"ending_before"`
}

func (s *Service) ListPaymentIntents(p ListPaymentIntentsParams) (model.List[*model.PaymentIntent], error) {
	var zero model.List[*model.PaymentIntent]

	limit, err := validate.LimitSplit(p.Limit)
	if err != nil {
		return zero, err
	}
	if p.StartingAfter != nil && p.EndingBefore != nil {
		return zero, simerr.InvalidRequest("Cannot provide both starting_after and ending_before.")
	}

	s.store.RLock()
	defer s.store.RUnlock()

	if p.Customer != nil {
		if _, ok := s.store.Customers[*p.Customer]; !ok {
			return zero, simerr.NotFound("Customer not found.")
		}
	}

	var intents []*model.PaymentIntent
	for _, pi := range s.store.PaymentIntents {
		if p.Customer != nil && (pi.Customer == nil || *pi.Customer != *p.Customer) {
			continue
		}
		intents = append(intents, pi)
	}
	intents = sortedByCreatedDesc(intents,
		func(pi *model.PaymentIntent) int64 { return pi.Created },
		func(pi *model.PaymentIntent) string { return pi.ID })

	// Cursor policy here is strict: an unknown cursor is an error, not
	// an empty page.
	piID := func(pi *model.PaymentIntent) string { return pi.ID }
	if p.StartingAfter != nil {
		var found bool
		intents, found = page.After(intents, piID, *p.StartingAfter)
		if !found {
			return zero, simerr.NotFound("No such payment intent: '%s'", *p.StartingAfter)
		}
	}
	if p.EndingBefore != nil {
		var found bool
		intents, found = page.Before(intents, piID, *p.EndingBefore)
		if !found {
			return zero, simerr.NotFound("No such payment intent: '%s'", *p.EndingBefore)
		}
	}

	data, hasMore := page.Window(intents, limit)
	return newList(data, hasMore), nil
}
