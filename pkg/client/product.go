package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Product defines the product catalog operations
type Product interface {
	ListProducts(ctx context.Context) ([]api.Product, error)
	GetProduct(ctx context.Context, id string) (*api.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	AddProduct(ctx context.Context, form *Form) (*api.Product, error)
	UpdateProduct(ctx context.Context, id string, form *Form) (*api.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// productClient handles product-related requests
type productClient struct {
	client *BaseClient
}

// NewProductClient creates a new product client
func NewProductClient(client *BaseClient) Product {
	return &productClient{client: client}
}

// ListProducts lists the whole catalog
func (c *productClient) ListProducts(ctx context.Context) ([]api.Product, error) {
	resp, err := c.client.Get(ctx, "/products/all")
	if err != nil {
		return nil, err
	}

	var products []api.Product
	if err := DecodeResponse(resp, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct retrieves a single product
func (c *productClient) GetProduct(ctx context.Context, id string) (*api.Product, error) {
	resp, err := c.client.Get(ctx, fmt.Sprintf("/products/%s", url.PathEscape(id)))
	if err != nil {
		return nil, err
	}

	var product api.Product
	if err := DecodeResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// ListCategories lists the known product categories
func (c *productClient) ListCategories(ctx context.Context) ([]string, error) {
	resp, err := c.client.Get(ctx, "/products/categories")
	if err != nil {
		return nil, err
	}

	var categories []string
	if err := DecodeResponse(resp, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// AddProduct creates a listing. The form carries the product fields plus the
// image file, so the request goes out as multipart form data.
func (c *productClient) AddProduct(ctx context.Context, form *Form) (*api.Product, error) {
	resp, err := c.client.PostForm(ctx, "/products/add", form)
	if err != nil {
		return nil, err
	}

	var product api.Product
	if err := DecodeResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct updates an existing listing
func (c *productClient) UpdateProduct(ctx context.Context, id string, form *Form) (*api.Product, error) {
	resp, err := c.client.PutForm(ctx, fmt.Sprintf("/products/update/%s", url.PathEscape(id)), form)
	if err != nil {
		return nil, err
	}

	var product api.Product
	if err := DecodeResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct removes a listing
func (c *productClient) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.client.Delete(ctx, fmt.Sprintf("/products/%s", url.PathEscape(id)))
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}
