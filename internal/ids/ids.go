// Package ids generates resource identifiers and creation timestamps.
//
// Every simulated resource carries an ID of the form <prefix><suffix>,
// where the prefix identifies the resource type (cus_, price_, pi_, ...)
// and callers rely on strings.HasPrefix against it. The suffix is random
// rather than clock-derived, so rapid sequential calls cannot collide.
package ids

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CustomerPrefix            = "cus_"
	ProductPrefix             = "prod_"
	PricePrefix               = "price_"
	PaymentLinkPrefix         = "pl_"
	PaymentLinkLineItemPrefix = "sli_"
	PaymentIntentPrefix       = "pi_"
	RefundPrefix              = "re_"
	InvoicePrefix             = "inv_"
	CouponPrefix              = "cou_"
	SubscriptionPrefix        = "sub_"
	SubscriptionItemPrefix    = "si_"
	DisputePrefix             = "dp_"
	MessagePrefix             = "msg_"
)

// New returns prefix followed by a 24-character hex suffix.
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + raw[:24]
}

// Now returns the current Unix time in seconds.
func Now() int64 {
	return time.Now().Unix()
}

// NowISO returns the current UTC time in RFC 3339 format, the timestamp
// shape used by the messaging simulator.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
