package client

import (
	"context"
	"net/url"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Dairy defines the dairy product operations
type Dairy interface {
	SaveDairyProduct(ctx context.Context, userID string, product *api.DairyProduct) (*api.DairyProduct, error)
	ListDairyProducts(ctx context.Context) ([]api.DairyProduct, error)
}

// dairyClient handles dairy-related requests
type dairyClient struct {
	client *BaseClient
}

// NewDairyClient creates a new dairy client
func NewDairyClient(client *BaseClient) Dairy {
	return &dairyClient{client: client}
}

// SaveDairyProduct creates a bookable dairy listing for a seller
func (c *dairyClient) SaveDairyProduct(ctx context.Context, userID string, product *api.DairyProduct) (*api.DairyProduct, error) {
	resp, err := c.client.Post(ctx, "/api/dairy/save?userId="+url.QueryEscape(userID), product)
	if err != nil {
		return nil, err
	}

	var saved api.DairyProduct
	if err := DecodeResponse(resp, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}

// ListDairyProducts lists all bookable dairy products
func (c *dairyClient) ListDairyProducts(ctx context.Context) ([]api.DairyProduct, error) {
	resp, err := c.client.Get(ctx, "/api/dairy/list")
	if err != nil {
		return nil, err
	}

	var products []api.DairyProduct
	if err := DecodeResponse(resp, &products); err != nil {
		return nil, err
	}

	return products, nil
}
