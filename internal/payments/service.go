// Package payments implements the Stripe-like billing simulator:
// customers, products, prices, payment links, payment intents, refunds,
// invoices, coupons, subscriptions and disputes. Every operation
// validates its input in three stages (syntactic, referential, business
// rules) and only mutates the store after all checks pass.
package payments

import (
	"sort"

	"saas-sim/internal/model"
	"saas-sim/internal/store"
)

type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

// sortedByCreatedDesc returns records ordered newest first, the default
// ordering of every list endpoint except invoices. Ties break on ID so
// pagination stays stable.
func sortedByCreatedDesc[T any](items []T, created func(T) int64, id func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if created(out[i]) != created(out[j]) {
			return created(out[i]) > created(out[j])
		}
		return id(out[i]) > id(out[j])
	})
	return out
}

func sortedByCreatedAsc[T any](items []T, created func(T) int64, id func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if created(out[i]) != created(out[j]) {
			return created(out[i]) < created(out[j])
		}
		return id(out[i]) < id(out[j])
	})
	return out
}

func newList[T any](data []T, hasMore bool) model.List[T] {
	return model.NewList(data, hasMore)
}
