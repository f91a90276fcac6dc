package services

import (
	"context"

	"takeaway/internal/models"
	"takeaway/internal/repositories"
)

// RestaurantService handles business logic related to the restaurant profile.
type RestaurantService struct {
	repo      repositories.RestaurantRepository
	publisher EventPublisher
}

// NewRestaurantService creates a new RestaurantService. publisher may be nil.
func NewRestaurantService(repo repositories.RestaurantRepository, publisher EventPublisher) *RestaurantService {
	return &RestaurantService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListRestaurants retrieves all restaurants.
func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.repo.GetAll(ctx)
}

// GetRestaurantByID retrieves a single restaurant by its ID.
func (s *RestaurantService) GetRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// ActiveRestaurant returns the restaurant the storefront shows.
func (s *RestaurantService) ActiveRestaurant(ctx context.Context) (*models.Restaurant, error) {
	return s.repo.First(ctx)
}

// CreateRestaurant stores a new restaurant built from a validated input.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, in models.RestaurantInput) (*models.Restaurant, error) {
	restaurant := in.NewRestaurant()
	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	publish(s.publisher, EventRestaurantCreated, restaurant)
	return restaurant, nil
}

// UpdateRestaurant replaces the fields of an existing restaurant.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id uint, in models.RestaurantInput) (*models.Restaurant, error) {
	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(restaurant)
	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	publish(s.publisher, EventRestaurantUpdated, restaurant)
	return restaurant, nil
}

// DeleteRestaurant deletes a restaurant by its ID.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventRestaurantDeleted, map[string]uint{"id": id})
	return nil
}
