// Package client is a typed Go client for the takeaway admin API together
// with the small stateful stores an admin frontend keeps on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"takeaway/pkg/openinghours"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Product mirrors the product record returned by the API.
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	VAT         decimal.Decimal `json:"vat"`
	TagName     *string         `json:"tag_name"`
	TagColor    *string         `json:"tag_color"`
	SortOrder   *int            `json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductForm is the body sent to create or update a product. Nil optional
// fields are left out, so an update keeps their stored values.
type ProductForm struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	VAT         decimal.Decimal `json:"vat"`
	TagName     *string         `json:"tag_name,omitempty"`
	TagColor    *string         `json:"tag_color,omitempty"`
	SortOrder   *int            `json:"sort_order,omitempty"`
}

// Restaurant mirrors the restaurant record returned by the API.
type Restaurant struct {
	ID           uint               `json:"id"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	Phone        *string            `json:"phone"`
	Email        *string            `json:"email"`
	OpeningHours openinghours.Hours `json:"opening_hours"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// RestaurantForm is the body sent to create or update a restaurant.
type RestaurantForm struct {
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	Phone        *string            `json:"phone,omitempty"`
	Email        *string            `json:"email,omitempty"`
	OpeningHours openinghours.Hours `json:"opening_hours"`
}

// ListOptions are the query parameters of the product listing.
type ListOptions struct {
	SortBy        string
	SortDirection string
	Limit         int
}

func (o ListOptions) query() string {
	values := url.Values{}
	if o.SortBy != "" {
		values.Set("sort_by", o.SortBy)
	}
	if o.SortDirection != "" {
		values.Set("sort_direction", o.SortDirection)
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
	// Fields holds per-field messages of a 422 response.
	Fields map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error %d: %s %v", e.Status, e.Message, e.Fields)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsValidationError reports whether err is a 422 from the API.
func IsValidationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity
}

type errorEnvelope struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type listEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
}

type sortResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client talks to the API under baseURL, e.g. "http://localhost:8080/api".
// It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a Client. A nil httpClient gets a default with a timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Login exchanges admin credentials for a token and keeps it on the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return "", err
	}
	c.SetToken(out.Token)
	return out.Token, nil
}

// ListProducts returns products in the requested order.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]Product, error) {
	var out listEnvelope[Product]
	if err := c.do(ctx, http.MethodGet, "/products"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// FeaturedProduct returns the product with the lowest sort order.
func (c *Client) FeaturedProduct(ctx context.Context) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/products/featured", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct returns a single product.
func (c *Client) GetProduct(ctx context.Context, id uint) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, productPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/products", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct updates a product and returns the stored record.
func (c *Client) UpdateProduct(ctx context.Context, id uint, form ProductForm) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPut, productPath(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, productPath(id), nil, nil)
}

// SortProducts stores ids as the new product order and returns the
// server's confirmation message.
func (c *Client) SortProducts(ctx context.Context, ids []uint) (string, error) {
	var out sortResponse
	if err := c.do(ctx, http.MethodPost, "/products/sort", map[string][]uint{"order": ids}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListRestaurants returns every restaurant.
func (c *Client) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	var out listEnvelope[Restaurant]
	if err := c.do(ctx, http.MethodGet, "/restaurants", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ActiveRestaurant returns the restaurant shown on the storefront.
func (c *Client) ActiveRestaurant(ctx context.Context) (*Restaurant, error) {
	var out Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants/active", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRestaurant returns a single restaurant.
func (c *Client) GetRestaurant(ctx context.Context, id uint) (*Restaurant, error) {
	var out Restaurant
	if err := c.do(ctx, http.MethodGet, restaurantPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRestaurant creates a restaurant and returns the stored record.
func (c *Client) CreateRestaurant(ctx context.Context, form RestaurantForm) (*Restaurant, error) {
	var out Restaurant
	if err := c.do(ctx, http.MethodPost, "/restaurants", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRestaurant replaces a restaurant and returns the stored record.
func (c *Client) UpdateRestaurant(ctx context.Context, id uint, form RestaurantForm) (*Restaurant, error) {
	var out Restaurant
	if err := c.do(ctx, http.MethodPut, restaurantPath(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRestaurant deletes a restaurant.
func (c *Client) DeleteRestaurant(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, restaurantPath(id), nil, nil)
}

func productPath(id uint) string {
	return "/products/" + strconv.FormatUint(uint64(id), 10)
}

func restaurantPath(id uint) string {
	return "/restaurants/" + strconv.FormatUint(uint64(id), 10)
}

// do sends one request. in is encoded as the JSON body when non-nil and a
// 2xx response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
		apiErr.Fields = envelope.Errors
	}
	return apiErr
}
