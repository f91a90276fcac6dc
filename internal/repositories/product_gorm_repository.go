package repositories

import (
	"context"
	"errors"
	"fmt"

	"takeaway/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves products in the requested order. Products without a
// sort_order always come last when sorting by sort_order.
func (r *GORMProductRepository) List(ctx context.Context, opts ListOptions) ([]models.Product, error) {
	query := r.db.WithContext(ctx)
	if opts.SortBy == "sort_order" {
		query = query.Order("sort_order IS NULL")
	}
	query = query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: opts.SortBy}, Desc: opts.Descending}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Featured returns the product with the lowest sort_order.
func (r *GORMProductRepository) Featured(ctx context.Context) (*models.Product, error) {
	products, err := r.List(ctx, ListOptions{SortBy: "sort_order", Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("featured product: %w", ErrNotFound)
	}
	return &products[0], nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update writes every column of an existing product. Unlike Save it never
// inserts a missing row.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(product).Select("*").Omit("id", "created_at").Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// Reorder assigns sort_order = index inside a single transaction.
func (r *GORMProductRepository) Reorder(ctx context.Context, ids []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			res := tx.Model(&models.Product{}).Where("id = ?", id).Update("sort_order", index)
			if res.Error != nil {
				return fmt.Errorf("failed to set sort order of product %d: %w", id, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
			}
		}
		return nil
	})
}
