package payments

import (
	"strings"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

var subscriptionStatuses = []string{
	"active", "all", "canceled", "incomplete", "incomplete_expired",
	"past_due", "trialing", "unpaid",
}

type ListSubscriptionsParams struct {
	Customer *string `json:"customer"`
	Price    *string `json:"price"`
	Status   *string `json:"status"`
	Limit    *int    `json:"limit"`
}

func (s *Service) ListSubscriptions(p ListSubscriptionsParams) (model.List[*model.Subscription], error) {
	var zero model.List[*model.Subscription]

	limit, err := validate.LimitBetween(p.Limit)
	if err != nil {
		return zero, err
	}
	if p.Customer != nil && !strings.HasPrefix(*p.Customer, ids.CustomerPrefix) {
		return zero, simerr.InvalidRequest("Invalid customer ID format: %s.", *p.Customer)
	}
	if p.Price != nil && !strings.HasPrefix(*p.Price, ids.PricePrefix) {
		return zero, simerr.InvalidRequest("Invalid price ID format: %s.", *p.Price)
	}
	if p.Status != nil && !validate.OneOf(*p.Status, subscriptionStatuses...) {
		return zero, simerr.InvalidRequest("Invalid status: %s. Allowed values are: %s.",
			*p.Status, strings.Join(subscriptionStatuses, ", "))
	}

	s.store.RLock()
	defer s.store.RUnlock()

	var subs []*model.Subscription
	for _, sub := range s.store.Subscriptions {
		if p.Customer != nil && sub.Customer != *p.Customer {
			continue
		}
		if p.Status != nil && *p.Status != "all" && sub.Status != *p.Status {
			continue
		}
		if p.Price != nil {
			matched := false
			for _, item := range sub.Items.Data {
				if item.Price.ID == *p.Price {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		subs = append(subs, sub)
	}
	subs = sortedByCreatedDesc(subs,
		func(sub *model.Subscription) int64 { return sub.Created },
		func(sub *model.Subscription) string { return sub.ID })

	data, hasMore := page.Window(subs, limit)
	return newList(data, hasMore), nil
}

// cancelable reports whether a subscription in the given status may be
// canceled. Terminal and never-started states may not.
func cancelable(status string) bool {
	return !validate.OneOf(status, "canceled", "incomplete", "incomplete_expired")
}

func (s *Service) CancelSubscription(subscriptionID string) (*model.Subscription, error) {
	s.store.Lock()
	defer s.store.Unlock()

	sub, ok := s.store.Subscriptions[subscriptionID]
	if !ok {
		return nil, simerr.NotFound("No such subscription: '%s'", subscriptionID)
	}
	if !cancelable(sub.Status) {
		return nil, simerr.InvalidRequest(
			"Subscription '%s' cannot be canceled because its current status is '%s'.", subscriptionID, sub.Status)
	}

	now := ids.Now()
	sub.Status = "canceled"
	sub.CanceledAt = &now
	sub.EndedAt = &now
	sub.CancelAtPeriodEnd = false
	return sub, nil
}

// UpdateSubscriptionItem is one entry of an update payload. Changing an
// existing item is expressed as delete-then-add: one entry with the id
// and deleted true, another with the new price and quantity.
type UpdateSubscriptionItem struct {
	ID       *string `json:"id"`
	Price    *string `json:"price"`
	Quantity *int    `json:"quantity"`
	Deleted  *bool   `json:"deleted"`
}

type UpdateSubscriptionParams struct {
	Subscription      string                   `json:"subscription"`
	Items             []UpdateSubscriptionItem `json:"items"`
	ProrationBehavior *string                  `json:"proration_behavior"`
}

func (s *Service) UpdateSubscription(p UpdateSubscriptionParams) (*model.Subscription, error) {
	if p.Subscription == "" {
		return nil, simerr.InvalidRequest("Subscription ID is required.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	sub, ok := s.store.Subscriptions[p.Subscription]
	if !ok {
		return nil, simerr.NotFound("Subscription with ID %s not found.", p.Subscription)
	}

	if p.ProrationBehavior != nil {
		if !validate.OneOf(*p.ProrationBehavior, "create_prorations", "always_invoice", "none_implicit", "none") {
			return nil, simerr.InvalidRequest(
				"Invalid proration_behavior: %s. Allowed values are: ['create_prorations', 'always_invoice', 'none_implicit', 'none']",
				*p.ProrationBehavior)
		}
	}

	// Validate the whole payload before touching the subscription.
	for _, item := range p.Items {
		deleted := item.Deleted != nil && *item.Deleted
		if deleted {
			if item.ID == nil || *item.ID == "" {
				return nil, simerr.InvalidRequest("Item ID ('id') is required when 'deleted' is true.")
			}
			if item.Price != nil || item.Quantity != nil {
				return nil, simerr.InvalidRequest(
					"Cannot specify 'price' or 'quantity' for an item when 'deleted' is true.")
			}
			continue
		}
		if item.ID != nil {
			return nil, simerr.InvalidRequest(
				"To change item '%s', mark it as 'deleted: true' and add a new item entry. Do not provide 'id' for items that are not being deleted.",
				*item.ID)
		}
		if item.Price == nil || item.Quantity == nil {
			return nil, simerr.InvalidRequest("'price' and 'quantity' are required to add a new item.")
		}
		if *item.Quantity <= 0 {
			return nil, simerr.Validation("Validation failed for an item in 'items'")
		}
		if _, ok := s.store.Prices[*item.Price]; !ok {
			return nil, simerr.NotFound("Price with ID %s not found.", *item.Price)
		}
	}

	for _, item := range p.Items {
		if item.Deleted != nil && *item.Deleted {
			kept := sub.Items.Data[:0]
			for _, existing := range sub.Items.Data {
				if existing.ID != *item.ID {
					kept = append(kept, existing)
				}
			}
			sub.Items.Data = kept
			continue
		}
		price := s.store.Prices[*item.Price]
		sub.Items.Data = append(sub.Items.Data, model.SubscriptionItem{
			ID:       ids.New(ids.SubscriptionItemPrefix),
			Object:   "subscription_item",
			Price:    *price,
			Quantity: *item.Quantity,
			Created:  ids.Now(),
		})
	}
	if sub.Items.Data == nil {
		sub.Items.Data = []model.SubscriptionItem{}
	}
	return sub, nil
}
