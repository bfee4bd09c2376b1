// Package model defines the typed records the simulators store and
// return. Field names and json tags mirror the vendor schemas; records
// are plain data with no behavior so the operation packages stay the
// single place business rules live.
package model

// List is the envelope every collection-returning operation uses.
type List[T any] struct {
	Object  string `json:"object"`
	Data    []T    `json:"data"`
	HasMore bool   `json:"has_more"`
}

// NewList wraps data in a list envelope. A nil slice becomes an empty
// one so the envelope always serializes data as [].
func NewList[T any](data []T, hasMore bool) List[T] {
	if data == nil {
		data = []T{}
	}
	return List[T]{Object: "list", Data: data, HasMore: hasMore}
}
