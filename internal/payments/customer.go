package payments

import (
	"strings"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

const (
	maxNameLen  = 2048
	maxEmailLen = 512
)

type CreateCustomerParams struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

func (s *Service) CreateCustomer(p CreateCustomerParams) (*model.Customer, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, simerr.InvalidRequest("Customer name cannot be empty.")
	}
	if len(p.Name) > maxNameLen {
		return nil, simerr.InvalidRequest("Customer name cannot be longer than %d characters.", maxNameLen)
	}
	if p.Email != nil {
		if len(*p.Email) > maxEmailLen {
			return nil, simerr.InvalidRequest("Customer email cannot be longer than %d characters.", maxEmailLen)
		}
		if !validate.Email(*p.Email) {
			return nil, simerr.InvalidRequest("Invalid email address: '%s'.", *p.Email)
		}
	}

	s.store.Lock()
	defer s.store.Unlock()

	c := &model.Customer{
		ID:      ids.New(ids.CustomerPrefix),
		Object:  "customer",
		Name:    p.Name,
		Email:   p.Email,
		Created: ids.Now(),
	}
	s.store.Customers[c.ID] = c
	return c, nil
}

type ListCustomersParams struct {
	Email *string `json:"email"`
	Limit *int    `json:"limit"`
}

func (s *Service) ListCustomers(p ListCustomersParams) (model.List[*model.Customer], error) {
	var zero model.List[*model.Customer]

	limit, err := validate.LimitBetween(p.Limit)
	if err != nil {
		return zero, err
	}

	s.store.RLock()
	defer s.store.RUnlock()

	var customers []*model.Customer
	for _, c := range s.store.Customers {
		if p.Email != nil && (c.Email == nil || *c.Email != *p.Email) {
			continue
		}
		customers = append(customers, c)
	}
	customers = sortedByCreatedDesc(customers,
		func(c *model.Customer) int64 { return c.Created },
		func(c *model.Customer) string { return c.ID })

	data, hasMore := page.Window(customers, limit)
	return newList(data, hasMore), nil
}
