package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Wishlist defines the wishlist operations
type Wishlist interface {
	GetWishlist(ctx context.Context, userID string) ([]api.WishlistItem, error)
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}

// wishlistClient handles wishlist-related requests
type wishlistClient struct {
	client *BaseClient
}

// NewWishlistClient creates a new wishlist client
func NewWishlistClient(client *BaseClient) Wishlist {
	return &wishlistClient{client: client}
}

// GetWishlist lists the wishlist items for a user
func (c *wishlistClient) GetWishlist(ctx context.Context, userID string) ([]api.WishlistItem, error) {
	userID = c.client.GetUserIDOrDefault(userID)
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	resp, err := c.client.Get(ctx, fmt.Sprintf("/wishlist/%s", url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}

	var items []api.WishlistItem
	if err := DecodeResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// AddToWishlist adds a product to a user's wishlist. Adding a product that
// is already present is a no-op on the server side.
func (c *wishlistClient) AddToWishlist(ctx context.Context, userID, productID string) error {
	resp, err := c.client.Post(ctx, fmt.Sprintf("/wishlist/%s/%s", url.PathEscape(userID), url.PathEscape(productID)), nil)
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}

// RemoveFromWishlist removes a product from a user's wishlist
func (c *wishlistClient) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	resp, err := c.client.Delete(ctx, fmt.Sprintf("/wishlist/%s/%s", url.PathEscape(userID), url.PathEscape(productID)))
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}
