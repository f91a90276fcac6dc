package handlers

import (
	"takeaway/internal/models"
	"takeaway/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RestaurantHandler handles HTTP requests for the restaurant profile.
type RestaurantHandler struct {
	service  *services.RestaurantService
	validate *validator.Validate
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the restaurant routes. guard runs before every
// route that writes.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	restaurantRoutes := router.Group("/restaurants")
	restaurantRoutes.Get("/", h.HandleListRestaurants)
	restaurantRoutes.Get("/active", h.HandleActiveRestaurant)
	restaurantRoutes.Post("/", guard, h.HandleCreateRestaurant)
	restaurantRoutes.Get("/:id", h.HandleGetRestaurant)
	restaurantRoutes.Put("/:id", guard, h.HandleUpdateRestaurant)
	restaurantRoutes.Delete("/:id", guard, h.HandleDeleteRestaurant)
}

// HandleListRestaurants lists every restaurant.
func (h *RestaurantHandler) HandleListRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.ListRestaurants(c.UserContext())
	if err != nil {
		return internalError(c, "Could not retrieve restaurants", err)
	}
	return listResponse(c, restaurants)
}

// HandleActiveRestaurant returns the restaurant shown on the storefront.
func (h *RestaurantHandler) HandleActiveRestaurant(c *fiber.Ctx) error {
	restaurant, err := h.service.ActiveRestaurant(c.UserContext())
	if err != nil {
		return storeError(c, "Restaurant", "Could not retrieve restaurant", err)
	}
	return c.JSON(restaurant)
}

// HandleGetRestaurant retrieves a single restaurant by its ID.
func (h *RestaurantHandler) HandleGetRestaurant(c *fiber.Ctx) error {
	id, found := paramID(c)
	if !found {
		return notFound(c, "Restaurant")
	}

	restaurant, err := h.service.GetRestaurantByID(c.UserContext(), id)
	if err != nil {
		return storeError(c, "Restaurant", "Could not retrieve restaurant", err)
	}
	return c.JSON(restaurant)
}

// HandleCreateRestaurant creates a new restaurant.
func (h *RestaurantHandler) HandleCreateRestaurant(c *fiber.Ctx) error {
	var input models.RestaurantInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	restaurant, err := h.service.CreateRestaurant(c.UserContext(), input)
	if err != nil {
		return internalError(c, "Could not create restaurant", err)
	}
	return c.Status(fiber.StatusCreated).JSON(restaurant)
}

// HandleUpdateRestaurant replaces an existing restaurant.
func (h *RestaurantHandler) HandleUpdateRestaurant(c *fiber.Ctx) error {
	id, found := paramID(c)
	if !found {
		return notFound(c, "Restaurant")
	}

	var input models.RestaurantInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	restaurant, err := h.service.UpdateRestaurant(c.UserContext(), id, input)
	if err != nil {
		return storeError(c, "Restaurant", "Could not update restaurant", err)
	}
	return c.JSON(restaurant)
}

// HandleDeleteRestaurant deletes a restaurant and answers 204 with no body.
func (h *RestaurantHandler) HandleDeleteRestaurant(c *fiber.Ctx) error {
	id, found := paramID(c)
	if !found {
		return notFound(c, "Restaurant")
	}

	if err := h.service.DeleteRestaurant(c.UserContext(), id); err != nil {
		return storeError(c, "Restaurant", "Could not delete restaurant", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
