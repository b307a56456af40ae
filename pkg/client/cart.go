package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Cart defines the cart operations
type Cart interface {
	GetCart(ctx context.Context, userID string) ([]api.CartItem, error)
	AddToCart(ctx context.Context, userID, productID string, quantity int) error
	UpdateCart(ctx context.Context, userID, productID string, newQuantity int) error
	RemoveFromCart(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

// cartClient handles cart-related requests
type cartClient struct {
	client *BaseClient
}

// NewCartClient creates a new cart client
func NewCartClient(client *BaseClient) Cart {
	return &cartClient{client: client}
}

// GetCart lists the cart lines for a user
func (c *cartClient) GetCart(ctx context.Context, userID string) ([]api.CartItem, error) {
	userID = c.client.GetUserIDOrDefault(userID)
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	resp, err := c.client.Get(ctx, fmt.Sprintf("/cart/%s", url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}

	var items []api.CartItem
	if err := DecodeResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// AddToCart adds a product to the cart with the given quantity
func (c *cartClient) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be a positive integer, got %d", quantity)
	}
	path := fmt.Sprintf("/cart/%s/%s/%d", url.PathEscape(userID), url.PathEscape(productID), quantity)
	resp, err := c.client.Post(ctx, path, nil)
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}

// UpdateCart sets the quantity of a cart line to newQuantity. The value
// replaces the stored quantity, it is not added to it.
func (c *cartClient) UpdateCart(ctx context.Context, userID, productID string, newQuantity int) error {
	if newQuantity < 1 {
		return fmt.Errorf("quantity must be a positive integer, got %d", newQuantity)
	}
	path := fmt.Sprintf("/cart/%s/%s/%d", url.PathEscape(userID), url.PathEscape(productID), newQuantity)
	resp, err := c.client.Put(ctx, path, nil)
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}

// RemoveFromCart removes one product's line from the cart
func (c *cartClient) RemoveFromCart(ctx context.Context, userID, productID string) error {
	resp, err := c.client.Delete(ctx, fmt.Sprintf("/cart/%s/%s", url.PathEscape(userID), url.PathEscape(productID)))
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}

// ClearCart removes every line from the user's cart
func (c *cartClient) ClearCart(ctx context.Context, userID string) error {
	resp, err := c.client.Delete(ctx, fmt.Sprintf("/cart/clear/%s", url.PathEscape(userID)))
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}
