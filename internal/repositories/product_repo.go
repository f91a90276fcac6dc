package repositories

import (
	"context"

	"takeaway/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, opts ListOptions) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Featured(ctx context.Context) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	// Reorder sets sort_order to the slice index of each id. Either every
	// id is updated or none is.
	Reorder(ctx context.Context, ids []uint) error
}
