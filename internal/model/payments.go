package model

// Customer is a billing customer record.
type Customer struct {
	ID       string            `json:"id"`
	Object   string            `json:"object"`
	Name     string            `json:"name"`
	Email    *string           `json:"email"`
	Created  int64             `json:"created"`
	Livemode bool              `json:"livemode"`
	Metadata map[string]string `json:"metadata"`
}

// Product is a sellable item. Description stays nil when it was never
// supplied so the serialized record distinguishes absent from empty.
type Product struct {
	ID          string            `json:"id"`
	Object      string            `json:"object"`
	Name        string            `json:"name"`
	Active      bool              `json:"active"`
	Created     int64             `json:"created"`
	Updated     int64             `json:"updated"`
	Livemode    bool              `json:"livemode"`
	Metadata    map[string]string `json:"metadata"`
	Description *string           `json:"description"`
	Deleted     bool              `json:"deleted,omitempty"`
}

// Recurring describes the billing cadence of a recurring price.
type Recurring struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`
}

// Price attaches an amount and currency to a product.
type Price struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	Active        bool              `json:"active"`
	Product       string            `json:"product"`
	UnitAmount    int64             `json:"unit_amount"`
	Currency      string            `json:"currency"`
	Type          string            `json:"type"`
	Recurring     *Recurring        `json:"recurring"`
	BillingScheme string            `json:"billing_scheme"`
	Created       int64             `json:"created"`
	Livemode      bool              `json:"livemode"`
	Metadata      map[string]string `json:"metadata"`
}

// PaymentLinkPrice is the price snapshot embedded in a payment link
// line item.
type PaymentLinkPrice struct {
	ID      string `json:"id"`
	Product string `json:"product"`
}

// PaymentLinkLineItem is a single purchasable entry on a payment link.
type PaymentLinkLineItem struct {
	ID       string           `json:"id"`
	Object   string           `json:"object"`
	Price    PaymentLinkPrice `json:"price"`
	Quantity int              `json:"quantity"`
}

// AfterCompletion describes what the payer sees once checkout finishes.
type AfterCompletion struct {
	Type     string  `json:"type"`
	Redirect *string `json:"redirect"`
}

// PaymentLink is a shareable checkout URL for a fixed price and quantity.
type PaymentLink struct {
	ID              string                    `json:"id"`
	Object          string                    `json:"object"`
	Active          bool                      `json:"active"`
	URL             string                    `json:"url"`
	LineItems       List[PaymentLinkLineItem] `json:"line_items"`
	AfterCompletion AfterCompletion           `json:"after_completion"`
	Livemode        bool                      `json:"livemode"`
	Metadata        map[string]string         `json:"metadata"`
	Created         int64                     `json:"created"`
}

// PaymentIntent tracks a single charge attempt.
type PaymentIntent struct {
	ID                 string            `json:"id"`
	Object             string            `json:"object"`
	Amount             int64             `json:"amount"`
	Currency           string            `json:"currency"`
	Customer           *string           `json:"customer"`
	Status             string            `json:"status"`
	PaymentMethodTypes []string          `json:"payment_method_types"`
	CaptureMethod      string            `json:"capture_method"`
	Created            int64             `json:"created"`
	Livemode           bool              `json:"livemode"`
	Metadata           map[string]string `json:"metadata"`
}

// Refund returns some or all of a succeeded payment intent's amount.
type Refund struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentIntent string            `json:"payment_intent"`
	Reason        *string           `json:"reason"`
	Status        string            `json:"status"`
	Created       int64             `json:"created"`
	Livemode      bool              `json:"livemode"`
	Metadata      map[string]string `json:"metadata"`
}

// InvoiceLinePrice is the price snapshot embedded in an invoice line.
type InvoiceLinePrice struct {
	ID      string `json:"id"`
	Product string `json:"product"`
}

// InvoiceLineItem is one line on an invoice.
type InvoiceLineItem struct {
	ID          string           `json:"id"`
	Amount      int64            `json:"amount"`
	Quantity    int              `json:"quantity"`
	Price       InvoiceLinePrice `json:"price"`
	Description string           `json:"description"`
}

// Invoice accumulates invoice items for a customer and can be
// finalized from draft into open.
type Invoice struct {
	ID        string                `json:"id"`
	Object    string                `json:"object"`
	Customer  string                `json:"customer"`
	Status    string                `json:"status"`
	Total     int64                 `json:"total"`
	AmountDue int64                 `json:"amount_due"`
	Currency  string                `json:"currency"`
	Created   int64                 `json:"created"`
	DueDate   *int64                `json:"due_date"`
	Lines     List[InvoiceLineItem] `json:"lines"`
	Livemode  bool                  `json:"livemode"`
	Metadata  map[string]string     `json:"metadata"`
}

// InvoiceItemPrice is the price snapshot embedded in an invoice item.
type InvoiceItemPrice struct {
	ID         string `json:"id"`
	Product    string `json:"product"`
	UnitAmount int64  `json:"unit_amount"`
	Currency   string `json:"currency"`
}

// InvoiceItem is a pending charge bound to an invoice.
type InvoiceItem struct {
	ID       string            `json:"id"`
	Object   string            `json:"object"`
	Customer string            `json:"customer"`
	Invoice  string            `json:"invoice"`
	Price    InvoiceItemPrice  `json:"price"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Quantity int               `json:"quantity"`
	Livemode bool              `json:"livemode"`
	Metadata map[string]string `json:"metadata"`
}

// Coupon carries exactly one discount method: a percentage or a fixed
// amount in a currency.
type Coupon struct {
	ID               string            `json:"id"`
	Object           string            `json:"object"`
	Name             *string           `json:"name"`
	PercentOff       *float64          `json:"percent_off"`
	AmountOff        *int64            `json:"amount_off"`
	Currency         *string           `json:"currency"`
	Duration         string            `json:"duration"`
	DurationInMonths *int              `json:"duration_in_months"`
	Created          int64             `json:"created"`
	Livemode         bool              `json:"livemode"`
	Valid            bool              `json:"valid"`
	Metadata         map[string]string `json:"metadata"`
}

// SubscriptionItem binds a price and quantity to a subscription.
type SubscriptionItem struct {
	ID       string            `json:"id"`
	Object   string            `json:"object"`
	Price    Price             `json:"price"`
	Quantity int               `json:"quantity"`
	Created  int64             `json:"created"`
	Metadata map[string]string `json:"metadata"`
}

// DiscountCoupon is the coupon summary inside a subscription discount.
type DiscountCoupon struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Valid bool    `json:"valid"`
}

// Discount is a coupon application on a subscription.
type Discount struct {
	ID     string         `json:"id"`
	Coupon DiscountCoupon `json:"coupon"`
}

// Subscription is a recurring billing agreement.
type Subscription struct {
	ID                   string                 `json:"id"`
	Object               string                 `json:"object"`
	Customer             string                 `json:"customer"`
	Status               string                 `json:"status"`
	Items                List[SubscriptionItem] `json:"items"`
	LatestInvoice        *string                `json:"latest_invoice"`
	CancelAtPeriodEnd    bool                   `json:"cancel_at_period_end"`
	CanceledAt           *int64                 `json:"canceled_at"`
	Created              int64                  `json:"created"`
	CurrentPeriodStart   int64                  `json:"current_period_start"`
	CurrentPeriodEnd     int64                  `json:"current_period_end"`
	StartDate            int64                  `json:"start_date"`
	EndedAt              *int64                 `json:"ended_at"`
	TrialStart           *int64                 `json:"trial_start"`
	TrialEnd             *int64                 `json:"trial_end"`
	DefaultPaymentMethod *string                `json:"default_payment_method"`
	Discount             *Discount              `json:"discount"`
	Livemode             bool                   `json:"livemode"`
	Metadata             map[string]string      `json:"metadata"`
}

// DisputeEvidence holds the updatable evidence fields of a dispute.
// Pointer fields distinguish cleared from never set.
type DisputeEvidence struct {
	CancellationPolicyDisclosure *string `json:"cancellation_policy_disclosure"`
	CancellationRebuttal         *string `json:"cancellation_rebuttal"`
	DuplicateChargeExplanation   *string `json:"duplicate_charge_explanation"`
	UncategorizedText            *string `json:"uncategorized_text"`
}

// Dispute is a cardholder challenge against a charge.
type Dispute struct {
	ID                 string            `json:"id"`
	Object             string            `json:"object"`
	Amount             int64             `json:"amount"`
	Currency           string            `json:"currency"`
	Status             string            `json:"status"`
	Reason             string            `json:"reason"`
	Charge             string            `json:"charge"`
	PaymentIntent      *string           `json:"payment_intent"`
	Created            int64             `json:"created"`
	Evidence           DisputeEvidence   `json:"evidence"`
	IsChargeRefundable bool              `json:"is_charge_refundable"`
	Livemode           bool              `json:"livemode"`
	Metadata           map[string]string `json:"metadata"`
}
