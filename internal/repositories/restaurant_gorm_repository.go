package repositories

import (
	"context"
	"errors"
	"fmt"

	"takeaway/internal/models"

	"gorm.io/gorm"
)

// GORMRestaurantRepository is a GORM implementation of RestaurantRepository.
type GORMRestaurantRepository struct {
	db *gorm.DB
}

// NewGORMRestaurantRepository creates a new instance of GORMRestaurantRepository.
func NewGORMRestaurantRepository(db *gorm.DB) *GORMRestaurantRepository {
	return &GORMRestaurantRepository{
		db: db,
	}
}

// GetAll retrieves all restaurants in creation order.
func (r *GORMRestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := r.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to get all restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByID retrieves a single restaurant by its ID.
func (r *GORMRestaurantRepository) GetByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get restaurant by ID %d: %w", id, err)
	}
	return &restaurant, nil
}

// First returns the oldest restaurant, which the storefront treats as active.
func (r *GORMRestaurantRepository) First(ctx context.Context) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).Order("id").First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("active restaurant: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active restaurant: %w", err)
	}
	return &restaurant, nil
}

// Create creates a new restaurant in the database.
func (r *GORMRestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// Update writes every column of an existing restaurant.
func (r *GORMRestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	res := r.db.WithContext(ctx).Model(restaurant).Select("*").Omit("id", "created_at").Updates(restaurant)
	if res.Error != nil {
		return fmt.Errorf("failed to update restaurant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("restaurant with ID %d: %w", restaurant.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a restaurant by its ID.
func (r *GORMRestaurantRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Restaurant{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete restaurant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("restaurant with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
