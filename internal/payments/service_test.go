package payments

import (
	"testing"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New()
	return New(st), st
}

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func int64Ptr(n int64) *int64     { return &n }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

// seedPaymentIntent inserts a payment intent directly, bypassing the
// create operation so tests can pin status and created time.
func seedPaymentIntent(st *store.Store, amount int64, status string, created int64) *model.PaymentIntent {
	pi := &model.PaymentIntent{
		ID:                 ids.New(ids.PaymentIntentPrefix),
		Object:             "payment_intent",
		Amount:             amount,
		Currency:           "usd",
		Status:             status,
		PaymentMethodTypes: []string{"card"},
		CaptureMethod:      "automatic_async",
		Created:            created,
		Metadata:           map[string]string{},
	}
	st.PaymentIntents[pi.ID] = pi
	return pi
}

func seedDispute(st *store.Store, status string, created int64) *model.Dispute {
	d := &model.Dispute{
		ID:       ids.New(ids.DisputePrefix),
		Object:   "dispute",
		Amount:   1000,
		Currency: "usd",
		Status:   status,
		Reason:   "general",
		Charge:   "ch_" + ids.New(""),
		Created:  created,
		Metadata: map[string]string{},
	}
	st.Disputes[d.ID] = d
	return d
}

func seedSubscription(st *store.Store, customer, status string, created int64, items ...model.SubscriptionItem) *model.Subscription {
	sub := &model.Subscription{
		ID:       ids.New(ids.SubscriptionPrefix),
		Object:   "subscription",
		Customer: customer,
		Status:   status,
		Items:    model.NewList(items, false),
		Created:  created,
		Metadata: map[string]string{},
	}
	st.Subscriptions[sub.ID] = sub
	return sub
}
