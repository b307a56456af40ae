package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Payment defines the payment operations
type Payment interface {
	RegisterPaymentAccount(ctx context.Context, userID string, account *api.PaymentAccount) (*api.PaymentAccount, error)
	GetPaymentAccountByUserID(ctx context.Context, userID string) (*api.PaymentAccount, error)
	GetOrdersBySeller(ctx context.Context, sellerID string) ([]api.Order, error)
	GetOrdersByCustomer(ctx context.Context, customerID string) ([]api.Order, error)
	GetPayment(ctx context.Context, id string) (*api.Order, error)
	CreateOrder(ctx context.Context, req *api.CreateOrderRequest) (*api.Order, error)
}

// paymentClient handles payment-related requests
type paymentClient struct {
	client *BaseClient
}

// NewPaymentClient creates a new payment client
func NewPaymentClient(client *BaseClient) Payment {
	return &paymentClient{client: client}
}

// RegisterPaymentAccount registers payout details for a seller
func (c *paymentClient) RegisterPaymentAccount(ctx context.Context, userID string, account *api.PaymentAccount) (*api.PaymentAccount, error) {
	resp, err := c.client.Post(ctx, fmt.Sprintf("/api/payment/register/%s", url.PathEscape(userID)), account)
	if err != nil {
		return nil, err
	}

	var created api.PaymentAccount
	if err := DecodeResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// GetPaymentAccountByUserID retrieves a user's payment account
func (c *paymentClient) GetPaymentAccountByUserID(ctx context.Context, userID string) (*api.PaymentAccount, error) {
	resp, err := c.client.Get(ctx, fmt.Sprintf("/api/payment/user/%s", url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}

	var account api.PaymentAccount
	if err := DecodeResponse(resp, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetOrdersBySeller lists orders received by a seller
func (c *paymentClient) GetOrdersBySeller(ctx context.Context, sellerID string) ([]api.Order, error) {
	resp, err := c.client.Get(ctx, fmt.Sprintf("/payment/merchant/%s", url.PathEscape(sellerID)))
	if err != nil {
		return nil, err
	}

	var orders []api.Order
	if err := DecodeResponse(resp, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrdersByCustomer lists orders placed by a customer
func (c *paymentClient) GetOrdersByCustomer(ctx context.Context, customerID string) ([]api.Order, error) {
	resp, err := c.client.Get(ctx, fmt.Sprintf("/payment/customer/orders/%s", url.PathEscape(customerID)))
	if err != nil {
		return nil, err
	}

	var orders []api.Order
	if err := DecodeResponse(resp, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetPayment retrieves a single payment record by ID
func (c *paymentClient) GetPayment(ctx context.Context, id string) (*api.Order, error) {
	resp, err := c.client.Get(ctx, fmt.Sprintf("/payment/%s", url.PathEscape(id)))
	if err != nil {
		return nil, err
	}

	var order api.Order
	if err := DecodeResponse(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// CreateOrder starts a checkout for a single product
func (c *paymentClient) CreateOrder(ctx context.Context, req *api.CreateOrderRequest) (*api.Order, error) {
	resp, err := c.client.Post(ctx, "/payment/create", req)
	if err != nil {
		return nil, err
	}

	var order api.Order
	if err := DecodeResponse(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
