package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocraft-dev/agrocraft-go/internal/testserver"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newBookingFixture(t *testing.T) *ClientSet {
	t.Helper()
	backend := testserver.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return New(server.URL)
}

func TestSaveAndListDairyProducts(t *testing.T) {
	clients := newBookingFixture(t)
	ctx := context.Background()

	saved, err := clients.Dairy.SaveDairyProduct(ctx, "s-1", &api.DairyProduct{
		Name:  "Buffalo Milk",
		Price: decimal.NewFromInt(80),
		Unit:  "litre",
	})
	require.NoError(t, err)
	assert.Equal(t, "s-1", saved.SellerID)

	listed, err := clients.Dairy.ListDairyProducts(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Buffalo Milk", listed[0].Name)
}

func TestBookDairyProduct(t *testing.T) {
	clients := newBookingFixture(t)
	ctx := context.Background()

	booking, err := clients.Booking.BookDairyProduct(ctx, &api.Booking{
		ProductID:  "d-1",
		CustomerID: "c-1",
		Quantity:   2,
		Date:       "2026-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "booked", booking.Status)
	assert.NotEmpty(t, booking.ID)

	all, err := clients.Booking.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "c-1", all[0].CustomerID)
}

func TestBookDairyProductRejectsZeroQuantity(t *testing.T) {
	clients := newBookingFixture(t)

	_, err := clients.Booking.BookDairyProduct(context.Background(), &api.Booking{
		ProductID:  "d-1",
		CustomerID: "c-1",
		Quantity:   0,
	})
	assert.Error(t, err)
}
