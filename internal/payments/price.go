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

const fieldErrPrefix = "Input validation failed: Error in field '%s': %s"

func fieldErr(field, msg string) error {
	return simerr.InvalidRequest(fieldErrPrefix, field, msg)
}

type CreatePriceParams struct {
	Product    string `json:"product"`
	UnitAmount int64  `json:"unit_amount"`
	Currency   string `json:"currency"`
}

func (s *Service) CreatePrice(p CreatePriceParams) (*model.Price, error) {
	if strings.TrimSpace(p.Product) == "" {
		return nil, fieldErr("product", "Product ID must be a non empty string.")
	}
	if p.UnitAmount < 0 {
		return nil, fieldErr("unit_amount", "Unit amount must be a non negative integer.")
	}
	currency, issue := validate.Currency(p.Currency)
	switch issue {
	case validate.CurrencyEmpty:
		return nil, fieldErr("currency", "Currency must be a non empty string.")
	case validate.CurrencyMalformed:
		return nil, fieldErr("currency", fmt.Sprintf(
			"Currency '%s' must be a 3-letter ISO code (e.g., usd, eur).", p.Currency))
	case validate.CurrencyUnsupported:
		return nil, fieldErr("currency", fmt.Sprintf(
			"Unsupported currency: '%s'. Supported currencies are: %s.",
			p.Currency, validate.SupportedCurrencyList()))
	}

	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.store.Products[p.Product]; !ok {
		return nil, simerr.NotFound(
			"Product with ID '%s' not found. A product must be created before a price can be added to it.", p.Product)
	}

	price := &model.Price{
		ID:            ids.New(ids.PricePrefix),
		Object:        "price",
		Active:        true,
		Product:       p.Product,
		UnitAmount:    p.UnitAmount,
		Currency:      currency,
		Type:          "one_time",
		BillingScheme: "per_unit",
		Created:       ids.Now(),
	}
	s.store.Prices[price.ID] = price
	return price, nil
}

type ListPricesParams struct {
	Product *string `json:"product"`
	Limit   *int    `json:"limit"`
}

func (s *Service) ListPrices(p ListPricesParams) (model.List[*model.Price], error) {
	var zero model.List[*model.Price]

	limit, err := validate.LimitBetweenShort(p.Limit)
	if err != nil {
		return zero, err
	}

	s.store.RLock()
	defer s.store.RUnlock()

	if p.Product != nil {
		if _, ok := s.store.Products[*p.Product]; !ok {
			return zero, simerr.NotFound("Product with ID '%s' not found.", *p.Product)
		}
	}

	var prices []*model.Price
	for _, price := range s.store.Prices {
		if p.Product != nil && price.Product != *p.Product {
			continue
		}
		prices = append(prices, price)
	}
	prices = sortedByCreatedDesc(prices,
		func(p *model.Price) int64 { return p.Created },
		func(p *model.Price) string { return p.ID })

	data, hasMore := page.Window(prices, limit)
	return newList(data, hasMore), nil
}
