package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"takeaway/internal/models"
	"takeaway/internal/repositories"
	"takeaway/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func dec(v string) models.Optional[decimal.Decimal] {
	return models.Some(decimal.RequireFromString(v))
}

func TestListQuery_Options(t *testing.T) {
	tests := []struct {
		name  string
		query services.ListQuery
		want  repositories.ListOptions
	}{
		{"defaults", services.ListQuery{}, repositories.ListOptions{SortBy: "sort_order"}},
		{"allowed field", services.ListQuery{SortBy: "price"}, repositories.ListOptions{SortBy: "price"}},
		{"unknown field falls back", services.ListQuery{SortBy: "password"}, repositories.ListOptions{SortBy: "sort_order"}},
		{"injection falls back", services.ListQuery{SortBy: "name; DROP TABLE products"}, repositories.ListOptions{SortBy: "sort_order"}},
		{"desc any case", services.ListQuery{SortBy: "name", SortDirection: "DESC"}, repositories.ListOptions{SortBy: "name", Descending: true}},
		{"unknown direction is asc", services.ListQuery{SortDirection: "sideways"}, repositories.ListOptions{SortBy: "sort_order"}},
		{"positive limit", services.ListQuery{Limit: 3}, repositories.ListOptions{SortBy: "sort_order", Limit: 3}},
		{"negative limit is unbounded", services.ListQuery{Limit: -1}, repositories.ListOptions{SortBy: "sort_order"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Options())
		})
	}
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Margherita", SortOrder: intPtr(0)},
		{ID: 2, Name: "Pepperoni", SortOrder: intPtr(1)},
	}

	mockRepo.On("List", repositories.ListOptions{SortBy: "sort_order", Limit: 2}).Return(expectedProducts, nil).Once()

	products, err := service.ListProducts(context.Background(), services.ListQuery{SortBy: "password", Limit: 2})

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Margherita"}

	mockRepo.On("GetByID", uint(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	input := models.ProductInput{
		Name:     "Calzone",
		Price:    dec("95.50"),
		VAT:      dec("25"),
		TagName:  models.Some("Pizza"),
		TagColor: models.Some("#e11d48"),
	}

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Calzone" && p.Price.Equal(decimal.RequireFromString("95.5")) && *p.TagName == "Pizza"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 7
	}).Return(nil).Once()
	publisher.On("Publish", services.EventProductCreated, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), product.ID)
	assert.Nil(t, product.SortOrder)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)

	// Store failure surfaces and publishes nothing.
	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("database error")).Once()
	product, err = service.CreateProduct(context.Background(), input)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "database error")
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestProductService_CreateProduct_PublishFailureIsIgnored(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	publisher.On("Publish", services.EventProductCreated, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := service.CreateProduct(context.Background(), models.ProductInput{Name: "Cola", Price: dec("20"), VAT: dec("25")})
	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{
		ID:          1,
		Name:        "Margherita",
		Description: strPtr("Classic"),
		Price:       decimal.RequireFromString("89"),
		SortOrder:   intPtr(4),
	}
	mockRepo.On("GetByID", uint(1)).Return(stored, nil).Once()
	mockRepo.On("Update", stored).Return(nil).Once()

	updated, err := service.UpdateProduct(context.Background(), 1, models.ProductInput{
		Name:  "Margherita XL",
		Price: dec("109"),
		VAT:   dec("25"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Margherita XL", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(109)))
	// Fields missing from the input keep their stored value.
	assert.Equal(t, 4, *updated.SortOrder)
	assert.Equal(t, "Classic", *updated.Description)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NullClearsOptionalFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{
		ID:          2,
		Name:        "Pepperoni",
		Description: strPtr("Spicy"),
		TagName:     strPtr("Pizza"),
		TagColor:    strPtr("#ff0000"),
		SortOrder:   intPtr(3),
	}
	mockRepo.On("GetByID", uint(2)).Return(stored, nil).Once()
	mockRepo.On("Update", stored).Return(nil).Once()

	updated, err := service.UpdateProduct(context.Background(), 2, models.ProductInput{
		Name:        "Pepperoni",
		Price:       dec("99"),
		VAT:         dec("25"),
		Description: models.Null[string](),
		TagName:     models.Null[string](),
		TagColor:    models.Null[string](),
		SortOrder:   models.Null[int](),
	})
	assert.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.TagName)
	assert.Nil(t, updated.TagColor)
	assert.Nil(t, updated.SortOrder)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()

	_, err := service.UpdateProduct(context.Background(), 99, models.ProductInput{Name: "Ghost", Price: dec("1"), VAT: dec("0")})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	publisher.On("Publish", services.EventProductDeleted, map[string]uint{"id": 1}).Return(nil).Once()
	err := service.DeleteProduct(context.Background(), 1)
	assert.NoError(t, err)

	mockRepo.On("Delete", uint(1)).Return(fmt.Errorf("product with ID 1: %w", repositories.ErrNotFound)).Once()
	err = service.DeleteProduct(context.Background(), 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProductService_ReorderProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	order := []uint{3, 1, 2}
	mockRepo.On("Reorder", order).Return(nil).Once()
	publisher.On("Publish", services.EventProductsReordered, map[string][]uint{"order": order}).Return(nil).Once()

	assert.NoError(t, service.ReorderProducts(context.Background(), order))

	mockRepo.On("Reorder", []uint{3, 42}).Return(fmt.Errorf("product with ID 42: %w", repositories.ErrNotFound)).Once()
	err := service.ReorderProducts(context.Background(), []uint{3, 42})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
