package client

import (
	"context"
	"log"
	"sync"
	"time"

	"takeaway/pkg/openinghours"
)

const (
	errFetchRestaurants = "Kunne ikke hente restauranter"
	errFetchRestaurant  = "Kunne ikke hente restaurant"
	errCreateRestaurant = "Kunne ikke oprette restaurant"
	errUpdateRestaurant = "Kunne ikke opdatere restaurant"
	errDeleteRestaurant = "Kunne ikke slette restaurant"
)

// DefaultRestaurant is the blank profile shown before one is created.
func DefaultRestaurant() Restaurant {
	return Restaurant{OpeningHours: openinghours.Default()}
}

// RestaurantStore holds the restaurant state shared by the admin UI. Create
// one at the UI root and pass it to whatever needs it.
type RestaurantStore struct {
	client *Client

	mu          sync.RWMutex
	restaurant  Restaurant
	restaurants []Restaurant
	loading     bool
	err         string
}

// NewRestaurantStore creates a store holding DefaultRestaurant.
func NewRestaurantStore(client *Client) *RestaurantStore {
	return &RestaurantStore{
		client:     client,
		restaurant: DefaultRestaurant(),
	}
}

// Restaurant returns the current restaurant.
func (s *RestaurantStore) Restaurant() Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restaurant
}

// Restaurants returns a copy of the last fetched list.
func (s *RestaurantStore) Restaurants() []Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Restaurant(nil), s.restaurants...)
}

// Loading reports whether a fetch is in flight.
func (s *RestaurantStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the message of the last failure, or "".
func (s *RestaurantStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// IsOpenNow reports whether the current restaurant is open at now.
func (s *RestaurantStore) IsOpenNow(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return openinghours.IsOpenNow(s.restaurant.OpeningHours, now)
}

// FetchAll loads every restaurant.
func (s *RestaurantStore) FetchAll(ctx context.Context) error {
	s.begin()
	restaurants, err := s.client.ListRestaurants(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Printf("Error fetching restaurants: %v", err)
		s.err = errFetchRestaurants
		return err
	}
	s.restaurants = restaurants
	return nil
}

// Fetch loads restaurant id. With id 0 it loads the first restaurant, or
// DefaultRestaurant when there is none.
func (s *RestaurantStore) Fetch(ctx context.Context, id uint) error {
	s.begin()

	var (
		restaurant Restaurant
		err        error
	)
	if id != 0 {
		var found *Restaurant
		if found, err = s.client.GetRestaurant(ctx, id); err == nil {
			restaurant = *found
		}
	} else {
		var list []Restaurant
		if list, err = s.client.ListRestaurants(ctx); err == nil {
			restaurant = DefaultRestaurant()
			if len(list) > 0 {
				restaurant = list[0]
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Printf("Error fetching restaurant %d: %v", id, err)
		s.err = errFetchRestaurant
		return err
	}
	s.restaurant = restaurant
	return nil
}

// Create creates a restaurant and makes it current.
func (s *RestaurantStore) Create(ctx context.Context, form RestaurantForm) (*Restaurant, error) {
	created, err := s.client.CreateRestaurant(ctx, form)
	return s.stored(created, err, errCreateRestaurant)
}

// Update replaces a restaurant and makes the result current.
func (s *RestaurantStore) Update(ctx context.Context, id uint, form RestaurantForm) (*Restaurant, error) {
	updated, err := s.client.UpdateRestaurant(ctx, id, form)
	return s.stored(updated, err, errUpdateRestaurant)
}

// Delete deletes a restaurant. When it was current the store falls back
// to DefaultRestaurant.
func (s *RestaurantStore) Delete(ctx context.Context, id uint) error {
	err := s.client.DeleteRestaurant(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("Error deleting restaurant %d: %v", id, err)
		s.err = errDeleteRestaurant
		return err
	}
	if s.restaurant.ID == id {
		s.restaurant = DefaultRestaurant()
	}
	return nil
}

func (s *RestaurantStore) stored(restaurant *Restaurant, err error, message string) (*Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("%s: %v", message, err)
		s.err = message
		return nil, err
	}
	s.restaurant = *restaurant
	out := *restaurant
	return &out, nil
}

func (s *RestaurantStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}
