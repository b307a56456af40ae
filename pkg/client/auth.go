package client

import (
	"context"
	"net/url"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Auth defines the authentication operations
type Auth interface {
	Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error)
	Register(ctx context.Context, form *Form) (*api.StatusResponse, error)
	Verify(ctx context.Context, email, otp string) (*api.StatusResponse, error)
	RegenerateOTP(ctx context.Context, email string) (*api.StatusResponse, error)
	ForgotPassword(ctx context.Context, email string) (*api.StatusResponse, error)
	ResetPassword(ctx context.Context, req *api.ResetPasswordRequest) (*api.StatusResponse, error)
}

// authClient handles authentication-related requests
type authClient struct {
	client *BaseClient
}

// NewAuthClient creates a new auth client
func NewAuthClient(client *BaseClient) Auth {
	return &authClient{client: client}
}

// Login exchanges credentials for a user ID and role
func (c *authClient) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	resp, err := c.client.Post(ctx, "/login", req)
	if err != nil {
		return nil, err
	}

	var login api.LoginResponse
	if err := DecodeResponse(resp, &login); err != nil {
		return nil, err
	}

	return &login, nil
}

// Register creates an account. The form carries the profile fields and an
// optional photo, so the request goes out as multipart form data.
func (c *authClient) Register(ctx context.Context, form *Form) (*api.StatusResponse, error) {
	resp, err := c.client.PostForm(ctx, "/register", form)
	if err != nil {
		return nil, err
	}

	var status api.StatusResponse
	if err := DecodeResponse(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// Verify confirms a new account with the emailed OTP
func (c *authClient) Verify(ctx context.Context, email, otp string) (*api.StatusResponse, error) {
	resp, err := c.client.Put(ctx, "/verify", &api.VerifyRequest{Email: email, OTP: otp})
	if err != nil {
		return nil, err
	}

	var status api.StatusResponse
	if err := DecodeResponse(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// RegenerateOTP requests a fresh OTP for an unverified account
func (c *authClient) RegenerateOTP(ctx context.Context, email string) (*api.StatusResponse, error) {
	resp, err := c.client.Put(ctx, "/regenerate-otp?email="+url.QueryEscape(email), nil)
	if err != nil {
		return nil, err
	}

	var status api.StatusResponse
	if err := DecodeResponse(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// ForgotPassword starts a password reset flow
func (c *authClient) ForgotPassword(ctx context.Context, email string) (*api.StatusResponse, error) {
	resp, err := c.client.Post(ctx, "/forgot-password", map[string]string{"email": email})
	if err != nil {
		return nil, err
	}

	var status api.StatusResponse
	if err := DecodeResponse(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// ResetPassword completes a password reset flow
func (c *authClient) ResetPassword(ctx context.Context, req *api.ResetPasswordRequest) (*api.StatusResponse, error) {
	resp, err := c.client.Post(ctx, "/reset-password", req)
	if err != nil {
		return nil, err
	}

	var status api.StatusResponse
	if err := DecodeResponse(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}
