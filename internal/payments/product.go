package payments

import (
	"strings"

	"saas-sim/internal/ids"
	"saas-sim/internal/model"
	"saas-sim/internal/page"
	"saas-sim/internal/simerr"
	"saas-sim/internal/validate"
)

type CreateProductParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (s *Service) CreateProduct(p CreateProductParams) (*model.Product, error) {
	if p.Name == "" {
		return nil, simerr.InvalidRequest("Product name cannot be empty.")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, simerr.InvalidRequest("Product name cannot have only whitespace.")
	}
	if len(p.Name) > maxNameLen {
		return nil, simerr.InvalidRequest("Product name cannot be longer than %d characters.", maxNameLen)
	}

	s.store.Lock()
	defer s.store.Unlock()

	now := ids.Now()
	prod := &model.Product{
		ID:          ids.New(ids.ProductPrefix),
		Object:      "product",
		Name:        p.Name,
		Active:      true,
		Created:     now,
		Updated:     now,
		Description: p.Description,
	}
	s.store.Products[prod.ID] = prod
	return prod, nil
}

type ListProductsParams struct {
	Limit *int `json:"limit"`
}

func (s *Service) ListProducts(p ListProductsParams) (model.List[*model.Product], error) {
	var zero model.List[*model.Product]

	limit, err := validate.LimitBetween(p.Limit)
	if err != nil {
		return zero, err
	}

	s.store.RLock()
	defer s.store.RUnlock()

	products := make([]*model.Product, 0, len(s.store.Products))
	for _, prod := range s.store.Products {
		products = append(products, prod)
	}
	products = sortedByCreatedDesc(products,
		func(p *model.Product) int64 { return p.Created },
		func(p *model.Product) string { return p.ID })

	data, hasMore := page.Window(products, limit)
	return newList(data, hasMore), nil
}

// DeleteProduct removes the product and returns it flagged deleted.
// Prices that reference the product are left in place.
func (s *Service) DeleteProduct(id string) (*model.Product, error) {
	if id == "" {
		return nil, simerr.InvalidRequest("Product ID cannot be empty.")
	}

	s.store.Lock()
	defer s.store.Unlock()

	prod, ok := s.store.Products[id]
	if !ok {
		return nil, simerr.API("An unexpected error occurred while deleting the product: No such product: %s", id)
	}
	delete(s.store.Products, id)
	prod.Deleted = true
	return prod, nil
}
