package payments

import (
	"strings"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

type CreateCouponParams struct {
	Name             *string  `json:"name"`
	AmountOff        *int64   `json:"amount_off"`
	Currency         *string  `json:"currency"`
	Duration         *string  `json:"duration"`
	DurationInMonths *int     `json:"duration_in_months"`
	PercentOff       *float64 `json:"percent_off"`
}

func (s *Service) CreateCoupon(p CreateCouponParams) (*model.Coupon, error) {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, simerr.InvalidRequest("Coupon name cannot be empty if provided.")
	}

	// Exactly one discount method.
	amountOffPositive := p.AmountOff != nil && *p.AmountOff > 0
	if p.PercentOff != nil && amountOffPositive {
		return nil, simerr.InvalidRequest(
			"Cannot specify both 'percent_off' and a positive 'amount_off'. Provide only one discount method.")
	}
	if p.PercentOff == nil && !amountOffPositive {
		return nil, simerr.InvalidRequest(
			"A discount must be specified. Provide either 'percent_off' or a positive 'amount_off'.")
	}

	var currency *string
	if p.PercentOff != nil {
		if *p.PercentOff <= 0 || *p.PercentOff > 100 {
			return nil, simerr.InvalidRequest("'percent_off' must be a positive float greater than 0 and up to 100.")
		}
	} else {
		if p.Currency == nil {
			return nil, simerr.InvalidRequest("'currency' is required when 'amount_off' is used for the discount.")
		}
		code, issue := validate.Currency(*p.Currency)
		switch issue {
		case validate.CurrencyEmpty, validate.CurrencyMalformed:
			return nil, simerr.InvalidRequest(
				"currency: Currency '%s' must be a 3-letter ISO code (e.g., usd, eur).", *p.Currency)
		case validate.CurrencyUnsupported:
			return nil, simerr.InvalidRequest(
				"currency: Unsupported currency: '%s'. Supported currencies are: %s.",
				*p.Currency, validate.SupportedCurrencyList())
		}
		currency = &code
	}

	duration := "once"
	if p.Duration != nil {
		duration = strings.ToLower(strings.TrimSpace(*p.Duration))
		if !validate.OneOf(duration, "forever", "once", "repeating") {
			return nil, simerr.InvalidRequest(
				"Invalid duration: '%s'. Must be one of forever, once, repeating.", *p.Duration)
		}
	}

	var durationInMonths *int
	if duration == "repeating" {
		if p.DurationInMonths == nil {
			return nil, simerr.InvalidRequest("'duration_in_months' is required when duration is 'repeating'.")
		}
		if *p.DurationInMonths <= 0 {
			return nil, simerr.InvalidRequest(
				"'duration_in_months' must be a positive integer for repeating duration.")
		}
		durationInMonths = p.DurationInMonths
	}

	var amountOff *int64
	if p.PercentOff == nil {
		amountOff = p.AmountOff
	}

	s.store.Lock()
	defer s.store.Unlock()

	c := &model.Coupon{
		ID:               ids.New(ids.CouponPrefix),
		Object:           "coupon",
		Name:             p.Name,
		PercentOff:       p.PercentOff,
		AmountOff:        amountOff,
		Currency:         currency,
		Duration:         duration,
		DurationInMonths: durationInMonths,
		Created:          ids.Now(),
		Valid:            true,
		Metadata:         map[string]string{},
	}
	s.store.Coupons[c.ID] = c
	return c, nil
}

type ListCouponsParams struct {
	Limit *int `json:"limit"`
}

// ListCoupons returns coupons newest first. Unlike most list endpoints
// there is no default page size: with no limit every coupon comes back.
func (s *Service) ListCoupons(p ListCouponsParams) (model.List[*model.Coupon], error) {
	var zero model.List[*model.Coupon]

	limit := -1
	if p.Limit != nil {
		var err error
		if limit, err = validate.LimitBetween(p.Limit); err != nil {
			return zero, err
		}
	}

	s.store.RLock()
	defer s.store.RUnlock()

	coupons := make([]*model.Coupon, 0, len(s.store.Coupons))
	for _, c := range s.store.Coupons {
		coupons = append(coupons, c)
	}
	coupons = sortedByCreatedDesc(coupons,
		func(c *model.Coupon) int64 { return c.Created },
		func(c *model.Coupon) string { return c.ID })

	data, hasMore := page.Window(coupons, limit)
	return newList(data, hasMore), nil
}
