package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// User defines the user profile operations
type User interface {
	GetUser(ctx context.Context, id string) (*api.User, error)
	UpdateProfile(ctx context.Context, userID string, form *Form) (*api.User, error)
	UpdateUser(ctx context.Context, id string, form *Form) (*api.User, error)
}

// userClient handles user-related requests
type userClient struct {
	client *BaseClient
}

// NewUserClient creates a new user client
func NewUserClient(client *BaseClient) User {
	return &userClient{client: client}
}

// GetUser retrieves a user by ID
func (c *userClient) GetUser(ctx context.Context, id string) (*api.User, error) {
	resp, err := c.client.Get(ctx, fmt.Sprintf("/users/%s", url.PathEscape(id)))
	if err != nil {
		return nil, err
	}

	var user api.User
	if err := DecodeResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile updates profile fields, optionally replacing the profile
// picture, which is why the body is multipart form data.
func (c *userClient) UpdateProfile(ctx context.Context, userID string, form *Form) (*api.User, error) {
	userID = c.client.GetUserIDOrDefault(userID)
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	resp, err := c.client.PutForm(ctx, "/updateProfile?userId="+url.QueryEscape(userID), form)
	if err != nil {
		return nil, err
	}

	var user api.User
	if err := DecodeResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser updates the account record itself
func (c *userClient) UpdateUser(ctx context.Context, id string, form *Form) (*api.User, error) {
	resp, err := c.client.PutForm(ctx, fmt.Sprintf("/users/update/%s", url.PathEscape(id)), form)
	if err != nil {
		return nil, err
	}

	var user api.User
	if err := DecodeResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
