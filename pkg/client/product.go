package client

import (
	"context"
	"log"
	"sync"
)

// DefaultTagColor is offered for products that have no tag color yet.
const DefaultTagColor = "#6466f1"

const (
	errFetchProduct  = "Der opstod en fejl ved hentning af produktet."
	errSaveProduct   = "Der opstod en fejl ved gemning af produktet."
	errDeleteProduct = "Der opstod en fejl ved sletning af produktet."
)

// ProductStore holds the product being edited in a form.
type ProductStore struct {
	client *Client

	mu      sync.RWMutex
	product *Product
	loading bool
	err     string
}

// NewProductStore creates an empty ProductStore.
func NewProductStore(client *Client) *ProductStore {
	return &ProductStore{client: client}
}

// Product returns a copy of the loaded product, or nil.
func (s *ProductStore) Product() *Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.product == nil {
		return nil
	}
	out := *s.product
	return &out
}

// Loading reports whether a fetch is in flight.
func (s *ProductStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the message of the last failure, or "".
func (s *ProductStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Form returns the loaded product as form values. Missing text fields
// become empty strings and a missing tag color becomes DefaultTagColor.
func (s *ProductStore) Form() ProductForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.product == nil {
		return ProductForm{TagColor: stringPtr(DefaultTagColor)}
	}

	p := s.product
	return ProductForm{
		Name:        p.Name,
		Description: stringPtr(valueOr(p.Description, "")),
		Price:       p.Price,
		VAT:         p.VAT,
		TagName:     stringPtr(valueOr(p.TagName, "")),
		TagColor:    stringPtr(valueOr(p.TagColor, DefaultTagColor)),
		SortOrder:   p.SortOrder,
	}
}

// FetchProduct loads a product into the store.
func (s *ProductStore) FetchProduct(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	product, err := s.client.GetProduct(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Printf("Error fetching product %d: %v", id, err)
		s.err = errFetchProduct
		return err
	}
	s.product = product
	return nil
}

// CreateProduct creates a product and loads it into the store.
func (s *ProductStore) CreateProduct(ctx context.Context, form ProductForm) (*Product, error) {
	product, err := s.client.CreateProduct(ctx, form)
	return s.saved(product, err)
}

// UpdateProduct updates a product and loads the result into the store.
func (s *ProductStore) UpdateProduct(ctx context.Context, id uint, form ProductForm) (*Product, error) {
	product, err := s.client.UpdateProduct(ctx, id, form)
	return s.saved(product, err)
}

// DeleteProduct deletes a product and clears the store when it held it.
func (s *ProductStore) DeleteProduct(ctx context.Context, id uint) error {
	err := s.client.DeleteProduct(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		s.err = errDeleteProduct
		return err
	}
	if s.product != nil && s.product.ID == id {
		s.product = nil
	}
	return nil
}

func (s *ProductStore) saved(product *Product, err error) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("Error saving product: %v", err)
		s.err = errSaveProduct
		return nil, err
	}
	s.err = ""
	s.product = product
	out := *product
	return &out, nil
}

func stringPtr(v string) *string { return &v }

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
