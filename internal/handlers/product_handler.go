package handlers

import (
	"strconv"

	"takeaway/internal/models"
	"takeaway/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SortConfirmation is returned after a successful reorder.
const SortConfirmation = "Sortering opdateret"

// ProductHandler handles HTTP requests for menu products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes. guard runs before every
// route that writes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/featured", h.HandleFeaturedProduct)
	productRoutes.Post("/sort", guard, h.HandleSortProducts)
	productRoutes.Post("/", guard, h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Put("/:id", guard, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", guard, h.HandleDeleteProduct)
}

// HandleListProducts lists products. Query: sort_by, sort_direction, limit.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	query := services.ListQuery{
		SortBy:        c.Query("sort_by"),
		SortDirection: c.Query("sort_direction"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		query.Limit = limit
	}

	products, err := h.service.ListProducts(c.UserContext(), query)
	if err != nil {
		return internalError(c, "Could not retrieve products", err)
	}
	return listResponse(c, products)
}

// HandleFeaturedProduct returns the product with the lowest sort order.
func (h *ProductHandler) HandleFeaturedProduct(c *fiber.Ctx) error {
	product, err := h.service.FeaturedProduct(c.UserContext())
	if err != nil {
		return storeError(c, "Product", "Could not retrieve featured product", err)
	}
	return c.JSON(product)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, found := paramID(c)
	if !found {
		return notFound(c, "Product")
	}

	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return storeError(c, "Product", "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return internalError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces the fields of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, found := paramID(c)
	if !found {
		return notFound(c, "Product")
	}

	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		return storeError(c, "Product", "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product and answers 204 with no body.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, found := paramID(c)
	if !found {
		return notFound(c, "Product")
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return storeError(c, "Product", "Could not delete product", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSortProducts stores the drag-and-drop order. Body: {"order": [ids]}.
func (h *ProductHandler) HandleSortProducts(c *fiber.Ctx) error {
	var input models.ReorderInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.ReorderProducts(c.UserContext(), input.Order); err != nil {
		return storeError(c, "Product", "Could not update product order", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": SortConfirmation,
	})
}
