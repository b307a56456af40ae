package client

import (
	"context"
	"fmt"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Booking defines the dairy booking operations
type Booking interface {
	BookDairyProduct(ctx context.Context, booking *api.Booking) (*api.Booking, error)
	ListBookings(ctx context.Context) ([]api.Booking, error)
}

// bookingClient handles booking-related requests
type bookingClient struct {
	client *BaseClient
}

// NewBookingClient creates a new booking client
func NewBookingClient(client *BaseClient) Booking {
	return &bookingClient{client: client}
}

// BookDairyProduct reserves a dairy product for a customer
func (c *bookingClient) BookDairyProduct(ctx context.Context, booking *api.Booking) (*api.Booking, error) {
	if booking.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be a positive integer, got %d", booking.Quantity)
	}

	resp, err := c.client.Post(ctx, "/api/bookings/book", booking)
	if err != nil {
		return nil, err
	}

	var created api.Booking
	if err := DecodeResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// ListBookings lists all bookings
func (c *bookingClient) ListBookings(ctx context.Context) ([]api.Booking, error) {
	resp, err := c.client.Get(ctx, "/api/bookings/all")
	if err != nil {
		return nil, err
	}

	var bookings []api.Booking
	if err := DecodeResponse(resp, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}
