package services

import "log"

// Catalog event types published after successful writes.
const (
	EventProductCreated    = "product.created"
	EventProductUpdated    = "product.updated"
	EventProductDeleted    = "product.deleted"
	EventProductsReordered = "products.reordered"
	EventRestaurantCreated = "restaurant.created"
	EventRestaurantUpdated = "restaurant.updated"
	EventRestaurantDeleted = "restaurant.deleted"
)

// EventPublisher delivers catalog change notifications to other systems.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// publish never fails the caller: the write has already been committed.
func publish(publisher EventPublisher, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
