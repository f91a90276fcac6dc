package client

import (
	"context"
	"log"
	"sync"
)

// Generic messages shown to the admin; details only go to the log.
const (
	errFetchProducts = "Der opstod en fejl ved hentning af produkter."
	errFetchFeatured = "Der opstod en fejl ved hentning af det fremhævede produkt."
	errUpdateOrder   = "Der opstod en fejl ved opdatering af rækkefølgen."
)

// ProductsStore holds the product list of an admin session.
type ProductsStore struct {
	client *Client

	mu       sync.RWMutex
	products []Product
	loading  bool
	err      string
}

// NewProductsStore creates an empty ProductsStore.
func NewProductsStore(client *Client) *ProductsStore {
	return &ProductsStore{client: client}
}

// Products returns a copy of the current list.
func (s *ProductsStore) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// Loading reports whether a fetch is in flight.
func (s *ProductsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the message of the last failure, or "".
func (s *ProductsStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Featured returns the featured product of the current list, or nil.
func (s *ProductsStore) Featured() *Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FeaturedProduct(s.products)
}

// FetchProducts replaces the list with the server's. On failure the list
// is left as it was.
func (s *ProductsStore) FetchProducts(ctx context.Context, opts ListOptions) error {
	s.begin()
	products, err := s.client.ListProducts(ctx, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		s.err = errFetchProducts
		return err
	}
	s.products = products
	return nil
}

// FetchFeaturedProduct asks the server for the featured product. It
// returns nil without error when there are no products.
func (s *ProductsStore) FetchFeaturedProduct(ctx context.Context) (*Product, error) {
	s.begin()
	product, err := s.client.FeaturedProduct(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		log.Printf("Error fetching featured product: %v", err)
		s.err = errFetchFeatured
		return nil, err
	}
	return product, nil
}

// UpdateProductOrder stores ids as the new order. On success the local
// list follows it: listed products move to the front in the given order
// with sort_order set to their index, the rest keep their relative order.
func (s *ProductsStore) UpdateProductOrder(ctx context.Context, ids []uint) error {
	if _, err := s.client.SortProducts(ctx, ids); err != nil {
		log.Printf("Error updating product order: %v", err)
		s.mu.Lock()
		s.err = errUpdateOrder
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = applyOrder(s.products, ids)
	return nil
}

func (s *ProductsStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

func applyOrder(products []Product, ids []uint) []Product {
	byID := make(map[uint]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]Product, 0, len(products))
	placed := make(map[uint]bool, len(ids))
	for index, id := range ids {
		p, found := byID[id]
		if !found {
			continue
		}
		order := index
		p.SortOrder = &order
		ordered = append(ordered, p)
		placed[id] = true
	}
	for _, p := range products {
		if !placed[p.ID] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// FeaturedProduct picks the product with the lowest sort order from
// products. A nil sort order counts as larger than any number; ties go to
// the earlier product. It returns nil for an empty list.
func FeaturedProduct(products []Product) *Product {
	var featured *Product
	for i := range products {
		p := &products[i]
		if featured == nil || sortsBefore(p.SortOrder, featured.SortOrder) {
			featured = p
		}
	}
	if featured == nil {
		return nil
	}
	out := *featured
	return &out
}

func sortsBefore(a, b *int) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}
