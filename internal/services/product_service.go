package services

import (
	"context"
	"fmt"
	"strings"

	"takeaway/internal/models"
	"takeaway/internal/repositories"
)

// DefaultSortField is used when the caller asks for no or an unknown field.
const DefaultSortField = "sort_order"

// productSortFields is the allow-list of columns a listing may sort by.
var productSortFields = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"sort_order": true,
	"created_at": true,
}

// ListQuery holds the raw listing parameters as received from a client.
type ListQuery struct {
	SortBy        string
	SortDirection string
	Limit         int
}

// Options resolves the query against the allow-list. Unknown fields fall
// back to sort_order and unknown directions to ascending.
func (q ListQuery) Options() repositories.ListOptions {
	opts := repositories.ListOptions{SortBy: DefaultSortField}
	if productSortFields[q.SortBy] {
		opts.SortBy = q.SortBy
	}
	opts.Descending = strings.EqualFold(q.SortDirection, "desc")
	if q.Limit > 0 {
		opts.Limit = q.Limit
	}
	return opts
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListProducts retrieves products ordered as requested.
func (s *ProductService) ListProducts(ctx context.Context, q ListQuery) ([]models.Product, error) {
	return s.repo.List(ctx, q.Options())
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// FeaturedProduct returns the product with the lowest sort order.
func (s *ProductService) FeaturedProduct(ctx context.Context) (*models.Product, error) {
	return s.repo.Featured(ctx)
}

// CreateProduct stores a new product built from a validated input.
func (s *ProductService) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	product := in.NewProduct()
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	publish(s.publisher, EventProductCreated, product)
	return product, nil
}

// UpdateProduct replaces the fields of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in models.ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(product)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	publish(s.publisher, EventProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventProductDeleted, map[string]uint{"id": id})
	return nil
}

// ReorderProducts gives each id its position in ids as sort order.
func (s *ProductService) ReorderProducts(ctx context.Context, ids []uint) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("failed to reorder products: %w", err)
	}
	publish(s.publisher, EventProductsReordered, map[string][]uint{"order": ids})
	return nil
}
