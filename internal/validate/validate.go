// Package validate holds the input checks shared across the simulator
// operation packages. Each simulated vendor words its errors differently,
// so the helpers here classify the input and leave message wording to
// the caller, except for the limit variants which are fixed strings
// reused verbatim by several endpoints.
package validate

import (
	"regexp"
	"sort"
	"strings"

	"saas-sim/internal/simerr"
)

// DefaultLimit is the page size applied when a list call omits limit.
const DefaultLimit = 10

// MaxLimit is the largest page size any list call accepts.
const MaxLimit = 100

var supportedCurrencies = map[string]bool{
	"usd": true,
	"eur": true,
	"gbp": true,
	"jpy": true,
	"cad": true,
	"aud": true,
}

// CurrencyIssue classifies a currency input.
type CurrencyIssue int

const (
	CurrencyOK CurrencyIssue = iota
	// CurrencyEmpty: nothing left after trimming whitespace.
	CurrencyEmpty
	// CurrencyMalformed: not exactly three ASCII letters after trimming.
	CurrencyMalformed
	// CurrencyUnsupported: well-formed but outside the supported set.
	CurrencyUnsupported
)

var currencyRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Currency trims and lowercases v and classifies it. The normalized code
// is only meaningful when the issue is CurrencyOK; error messages should
// echo the caller's original value, which the vendors report untouched.
func Currency(v string) (string, CurrencyIssue) {
	t := strings.TrimSpace(v)
	if t == "" {
		return "", CurrencyEmpty
	}
	if !currencyRe.MatchString(t) {
		return "", CurrencyMalformed
	}
	code := strings.ToLower(t)
	if !supportedCurrencies[code] {
		return "", CurrencyUnsupported
	}
	return code, CurrencyOK
}

// SupportedCurrencyList returns the supported codes sorted and joined
// with ", ", the shape used inside unsupported-currency messages.
func SupportedCurrencyList() string {
	codes := make([]string, 0, len(supportedCurrencies))
	for c := range supportedCurrencies {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return strings.Join(codes, ", ")
}

// LimitBetween applies the bounds with the wording used by the product,
// subscription and dispute lists.
func LimitBetween(limit *int) (int, error) {
	if limit == nil {
		return DefaultLimit, nil
	}
	if *limit < 1 || *limit > MaxLimit {
		return 0, simerr.InvalidRequest("Limit must be an integer between 1 and 100.")
	}
	return *limit, nil
}

// LimitBetweenShort applies the bounds with the wording used by the
// price list.
func LimitBetweenShort(limit *int) (int, error) {
	if limit == nil {
		return DefaultLimit, nil
	}
	if *limit < 1 || *limit > MaxLimit {
		return 0, simerr.InvalidRequest("Limit must be between 1 and 100.")
	}
	return *limit, nil
}

// LimitSplit applies the bounds with separate under/over messages, the
// wording used by the payment intent and invoice lists.
func LimitSplit(limit *int) (int, error) {
	if limit == nil {
		return DefaultLimit, nil
	}
	if *limit < 1 {
		return 0, simerr.InvalidRequest("Limit must be at least 1.")
	}
	if *limit > MaxLimit {
		return 0, simerr.InvalidRequest("Limit cannot exceed 100.")
	}
	return *limit, nil
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email reports whether v looks like an address. The simulator only
// checks shape, not deliverability.
func Email(v string) bool {
	return emailRe.MatchString(v)
}

// NonEmpty reports whether v contains anything besides whitespace.
func NonEmpty(v string) bool {
	return strings.TrimSpace(v) != ""
}

// OneOf reports whether v is a member of allowed.
func OneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
