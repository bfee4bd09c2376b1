package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-sim/internal/model"
	"saas-sim/internal/simerr"
)

func TestListSubscriptionsFilters(t *testing.T) {
	svc, st := newTestService(t)

	prod, err := svc.CreateProduct(CreateProductParams{Name: "Plan"})
	require.NoError(t, err)
	price, err := svc.CreatePrice(CreatePriceParams{Product: prod.ID, UnitAmount: 999, Currency: "usd"})
	require.NoError(t, err)

	active := seedSubscription(st, "cus_a", "active", 20, model.SubscriptionItem{
		ID: "si_1", Object: "subscription_item", Price: *st.Prices[price.ID], Quantity: 1,
	})
	seedSubscription(st, "cus_a", "canceled", 10)
	seedSubscription(st, "cus_b", "active", 30)

	list, err := svc.ListSubscriptions(ListSubscriptionsParams{Customer: strPtr("cus_a")})
	require.NoError(t, err)
	assert.Len(t, list.Data, 2)

	list, err = svc.ListSubscriptions(ListSubscriptionsParams{Customer: strPtr("cus_a"), Status: strPtr("active")})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, active.ID, list.Data[0].ID)

	list, err = svc.ListSubscriptions(ListSubscriptionsParams{Status: strPtr("all")})
	require.NoError(t, err)
	assert.Len(t, list.Data, 3)

	list, err = svc.ListSubscriptions(ListSubscriptionsParams{Price: &price.ID})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, active.ID, list.Data[0].ID)
}

func TestListSubscriptionsParamValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListSubscriptions(ListSubscriptionsParams{Customer: strPtr("customer-1")})
	require.Error(t, err)
	assert.Equal(t, "Invalid customer ID format: customer-1.", err.Error())

	_, err = svc.ListSubscriptions(ListSubscriptionsParams{Price: strPtr("pr-1")})
	require.Error(t, err)
	assert.Equal(t, "Invalid price ID format: pr-1.", err.Error())

	_, err = svc.ListSubscriptions(ListSubscriptionsParams{Status: strPtr("paused")})
	require.Error(t, err)
	assert.Equal(t,
		"Invalid status: paused. Allowed values are: active, all, canceled, incomplete, incomplete_expired, past_due, trialing, unpaid.",
		err.Error())
}

func TestCancelSubscription(t *testing.T) {
	svc, st := newTestService(t)
	sub := seedSubscription(st, "cus_a", "active", 10)

	canceled, err := svc.CancelSubscription(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "canceled", canceled.Status)
	require.NotNil(t, canceled.CanceledAt)
	require.NotNil(t, canceled.EndedAt)
	assert.False(t, canceled.CancelAtPeriodEnd)
}

func TestCancelSubscriptionErrors(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.CancelSubscription("sub_ghost")
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindNotFound))
	assert.Equal(t, "No such subscription: 'sub_ghost'", err.Error())

	for _, status := range []string{"canceled", "incomplete", "incomplete_expired"} {
		sub := seedSubscription(st, "cus_a", status, 10)
		_, err := svc.CancelSubscription(sub.ID)
		require.Error(t, err)
		assert.Equal(t,
			"Subscription '"+sub.ID+"' cannot be canceled because its current status is '"+status+"'.",
			err.Error())
	}
}

func TestUpdateSubscriptionAddItem(t *testing.T) {
	svc, st := newTestService(t)

	prod, err := svc.CreateProduct(CreateProductParams{Name: "Plan"})
	require.NoError(t, err)
	price, err := svc.CreatePrice(CreatePriceParams{Product: prod.ID, UnitAmount: 999, Currency: "usd"})
	require.NoError(t, err)
	sub := seedSubscription(st, "cus_a", "active", 10)

	updated, err := svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items:        []UpdateSubscriptionItem{{Price: &price.ID, Quantity: intPtr(2)}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items.Data, 1)
	assert.Equal(t, price.ID, updated.Items.Data[0].Price.ID)
	assert.Equal(t, 2, updated.Items.Data[0].Quantity)
}

func TestUpdateSubscriptionReplaceItem(t *testing.T) {
	svc, st := newTestService(t)

	prod, err := svc.CreateProduct(CreateProductParams{Name: "Plan"})
	require.NoError(t, err)
	oldPrice, err := svc.CreatePrice(CreatePriceParams{Product: prod.ID, UnitAmount: 999, Currency: "usd"})
	require.NoError(t, err)
	newPrice, err := svc.CreatePrice(CreatePriceParams{Product: prod.ID, UnitAmount: 1999, Currency: "usd"})
	require.NoError(t, err)
	sub := seedSubscription(st, "cus_a", "active", 10, model.SubscriptionItem{
		ID: "si_old", Object: "subscription_item", Price: *st.Prices[oldPrice.ID], Quantity: 1,
	})

	updated, err := svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items: []UpdateSubscriptionItem{
			{ID: strPtr("si_old"), Deleted: boolPtr(true)},
			{Price: &newPrice.ID, Quantity: intPtr(1)},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items.Data, 1)
	assert.Equal(t, newPrice.ID, updated.Items.Data[0].Price.ID)
}

func TestUpdateSubscriptionPayloadValidation(t *testing.T) {
	svc, st := newTestService(t)
	sub := seedSubscription(st, "cus_a", "active", 10)

	_, err := svc.UpdateSubscription(UpdateSubscriptionParams{Subscription: ""})
	require.Error(t, err)
	assert.Equal(t, "Subscription ID is required.", err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{Subscription: "sub_ghost"})
	require.Error(t, err)
	assert.Equal(t, "Subscription with ID sub_ghost not found.", err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID, ProrationBehavior: strPtr("maybe"),
	})
	require.Error(t, err)
	assert.Equal(t,
		"Invalid proration_behavior: maybe. Allowed values are: ['create_prorations', 'always_invoice', 'none_implicit', 'none']",
		err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items:        []UpdateSubscriptionItem{{Deleted: boolPtr(true)}},
	})
	require.Error(t, err)
	assert.Equal(t, "Item ID ('id') is required when 'deleted' is true.", err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items: []UpdateSubscriptionItem{
			{ID: strPtr("si_x"), Deleted: boolPtr(true), Price: strPtr("price_x")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "Cannot specify 'price' or 'quantity' for an item when 'deleted' is true.", err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items:        []UpdateSubscriptionItem{{ID: strPtr("si_x")}},
	})
	require.Error(t, err)
	assert.Equal(t,
		"To change item 'si_x', mark it as 'deleted: true' and add a new item entry. Do not provide 'id' for items that are not being deleted.",
		err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items:        []UpdateSubscriptionItem{{Price: strPtr("price_x")}},
	})
	require.Error(t, err)
	assert.Equal(t, "'price' and 'quantity' are required to add a new item.", err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items:        []UpdateSubscriptionItem{{Price: strPtr("price_x"), Quantity: intPtr(0)}},
	})
	require.Error(t, err)
	assert.True(t, simerr.IsKind(err, simerr.KindValidation))
	assert.Equal(t, "Validation failed for an item in 'items'", err.Error())

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items:        []UpdateSubscriptionItem{{Price: strPtr("price_ghost"), Quantity: intPtr(1)}},
	})
	require.Error(t, err)
	assert.Equal(t, "Price with ID price_ghost not found.", err.Error())
}

func TestUpdateSubscriptionFailsWithoutMutation(t *testing.T) {
	svc, st := newTestService(t)

	prod, err := svc.CreateProduct(CreateProductParams{Name: "Plan"})
	require.NoError(t, err)
	price, err := svc.CreatePrice(CreatePriceParams{Product: prod.ID, UnitAmount: 999, Currency: "usd"})
	require.NoError(t, err)
	sub := seedSubscription(st, "cus_a", "active", 10, model.SubscriptionItem{
		ID: "si_keep", Object: "subscription_item", Price: *st.Prices[price.ID], Quantity: 1,
	})

	_, err = svc.UpdateSubscription(UpdateSubscriptionParams{
		Subscription: sub.ID,
		Items: []UpdateSubscriptionItem{
			{ID: strPtr("si_keep"), Deleted: boolPtr(true)},
			{Price: strPtr("price_ghost"), Quantity: intPtr(1)},
		},
	})
	require.Error(t, err)
	require.Len(t, sub.Items.Data, 1)
	assert.Equal(t, "si_keep", sub.Items.Data[0].ID)
}
