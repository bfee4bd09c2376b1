package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-sim/internal/simerr"
)

func TestCreatePaymentIntent(t *testing.T) {
	svc, _ := newTestService(t)

	pi, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{Amount: 2000, Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "payment_intent", pi.Object)
	assert.Equal(t, "requires_payment_method", pi.Status)
	assert.Equal(t, []string{"card"}, pi.PaymentMethodTypes)
	assert.Equal(t, "automatic_async", pi.CaptureMethod)
	assert.NotNil(t, pi.Metadata)
}

func TestCreatePaymentIntentAmountBounds(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{Amount: 49, Currency: "usd"})
	require.Error(t, err)
	assert.Equal(t, "Amount must be at least 50 cents (or equivalent in charge currency).", err.Error())

	pi, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{Amount: 50, Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, int64(50), pi.Amount)

	pi, err = svc.CreatePaymentIntent(CreatePaymentIntentParams{Amount: 99_999_999, Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, int64(99_999_999), pi.Amount)

	_, err = svc.CreatePaymentIntent(CreatePaymentIntentParams{Amount: 100_000_000, Currency: "usd"})
	require.Error(t, err)
	assert.Equal(t, "Amount value supports up to eight digits.", err.Error())
}

func TestCreatePaymentIntentCurrency(t *testing.T) {
	svc, _ := newTestService(t)

	for _, cur := range []string{"", "us", "dollars"} {
		_, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{Amount: 100, Currency: cur})
		require.Error(t, err)
		assert.Equal(t, "Currency must be a three-letter ISO currency code.", err.Error())
	}

	_, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{Amount: 100, Currency: "chf"})
	require.Error(t, err)
	assert.Equal(t,
		"Unsupported currency: 'chf'. Supported currencies are: aud, cad, eur, gbp, jpy, usd.",
		err.Error())
}

func TestCreatePaymentIntentMethodTypes(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{
		Amount: 100, Currency: "usd", PaymentMethodTypes: []string{},
	})
	require.Error(t, err)
	assert.Equal(t, "At least one payment method type must be specified.", err.Error())

	_, err = svc.CreatePaymentIntent(CreatePaymentIntentParams{
		Amount: 100, Currency: "usd", PaymentMethodTypes: []string{"card", ""},
	})
	require.Error(t, err)
	assert.Equal(t, "Payment method type at index 1 cannot be empty.", err.Error())
}

func TestCreatePaymentIntentCaptureMethod(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{
		Amount: 100, Currency: "usd", CaptureMethod: strPtr("eventually"),
	})
	require.Error(t, err)
	assert.Equal(t, "Capture method must be one of: automatic, automatic_async, manual", err.Error())

	pi, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{
		Amount: 100, Currency: "usd", CaptureMethod: strPtr("manual"),
	})
	require.NoError(t, err)
	assert.Equal(t, "manual", pi.CaptureMethod)
}

func TestCreatePaymentIntentUnknownCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePaymentIntent(CreatePaymentIntentParams{
		Amount: 100, Currency: "usd", Customer: strPtr("cus_ghost"),
	})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindNotFound))
	assert.Equal(t, "No such customer: 'cus_ghost'", err.Error())
}

func TestListPaymentIntentsNewestFirst(t *testing.T) {
	svc, st := newTestService(t)

	old := seedPaymentIntent(st, 100, "succeeded", 10)
	recent := seedPaymentIntent(st, 200, "succeeded", 20)

	list, err := svc.ListPaymentIntents(ListPaymentIntentsParams{})
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, recent.ID, list.Data[0].ID)
	assert.Equal(t, old.ID, list.Data[1].ID)
}

func TestListPaymentIntentsCursorsExclusive(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListPaymentIntents(ListPaymentIntentsParams{
		StartingAfter: strPtr("pi_a"), EndingBefore: strPtr("pi_b"),
	})
	require.Error(t, err)
	assert.Equal(t, "Cannot provide both starting_after and ending_before.", err.Error())
}

func TestListPaymentIntentsUnknownCursor(t *testing.T) {
	svc, st := newTestService(t)
	seedPaymentIntent(st, 100, "succeeded", 10)

	_, err := svc.ListPaymentIntents(ListPaymentIntentsParams{StartingAfter: strPtr("pi_ghost")})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindNotFound))
	assert.Equal(t, "No such payment intent: 'pi_ghost'", err.Error())
}

func TestListPaymentIntentsStartingAfter(t *testing.T) {
	svc, st := newTestService(t)

	first := seedPaymentIntent(st, 100, "succeeded", 30)
	second := seedPaymentIntent(st, 100, "succeeded", 20)
	third := seedPaymentIntent(st, 100, "succeeded", 10)

	list, err := svc.ListPaymentIntents(ListPaymentIntentsParams{StartingAfter: &first.ID})
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, second.ID, list.Data[0].ID)
	assert.Equal(t, third.ID, list.Data[1].ID)
}

func TestListPaymentIntentsLimitMessages(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListPaymentIntents(ListPaymentIntentsParams{Limit: intPtr(0)})
	require.Error(t, err)
	assert.Equal(t, "Limit must be at least 1.", err.Error())

	_, err = svc.ListPaymentIntents(ListPaymentIntentsParams{Limit: intPtr(101)})
	require.Error(t, err)
	assert.Equal(t, "Limit cannot exceed 100.", err.Error())
}

func TestListPaymentIntentsByCustomer(t *testing.T) {
	svc, st := newTestService(t)

	cust, err := svc.CreateCustomer(CreateCustomerParams{Name: "Buyer"})
	require.NoError(t, err)
	pi := seedPaymentIntent(st, 100, "succeeded", 10)
	pi.Customer = &cust.ID
	seedPaymentIntent(st, 100, "succeeded", 20)

	list, err := svc.ListPaymentIntents(ListPaymentIntentsParams{Customer: &cust.ID})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, pi.ID, list.Data[0].ID)

	_, err = svc.ListPaymentIntents(ListPaymentIntentsParams{Customer: strPtr("cus_ghost")})
	require.Error(t, err)
	assert.Equal(t, "Customer not found.", err.Error())
}
