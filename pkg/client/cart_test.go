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

func newCartFixture(t *testing.T) (*testserver.Server, Cart) {
	t.Helper()
	backend := testserver.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, NewCartClient(NewBaseClient(server.URL))
}

func TestCartAddAndGet(t *testing.T) {
	backend, cart := newCartFixture(t)
	backend.AddProduct(api.Product{
		ID:       "7",
		Name:     "Fresh Milk",
		Price:    decimal.NewFromInt(100),
		Discount: decimal.NewFromInt(10),
	})

	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "u-1", "7", 2))

	items, err := cart.GetCart(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Equal(t, "180.00", api.Subtotal(items).StringFixed(2))
}

// UpdateCart is an absolute set: 3 then 5 yields 5, never 8.
func TestUpdateCartReplacesQuantity(t *testing.T) {
	backend, cart := newCartFixture(t)
	backend.AddProduct(api.Product{ID: "7", Name: "Fresh Milk"})

	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "u-1", "7", 1))
	require.NoError(t, cart.UpdateCart(ctx, "u-1", "7", 3))
	require.NoError(t, cart.UpdateCart(ctx, "u-1", "7", 5))

	assert.Equal(t, 5, backend.CartQuantity("u-1", "7"))
}

func TestCartRejectsNonPositiveQuantity(t *testing.T) {
	_, cart := newCartFixture(t)

	ctx := context.Background()
	assert.Error(t, cart.AddToCart(ctx, "u-1", "7", 0))
	assert.Error(t, cart.AddToCart(ctx, "u-1", "7", -2))
	assert.Error(t, cart.UpdateCart(ctx, "u-1", "7", 0))
}

func TestRemoveFromCart(t *testing.T) {
	backend, cart := newCartFixture(t)
	backend.AddProduct(api.Product{ID: "7"})
	backend.AddProduct(api.Product{ID: "8"})

	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "u-1", "7", 1))
	require.NoError(t, cart.AddToCart(ctx, "u-1", "8", 1))
	require.NoError(t, cart.RemoveFromCart(ctx, "u-1", "7"))

	items, err := cart.GetCart(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "8", items[0].Product.ID)
}

func TestClearCart(t *testing.T) {
	backend, cart := newCartFixture(t)
	backend.AddProduct(api.Product{ID: "7"})
	backend.AddProduct(api.Product{ID: "8"})

	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "u-1", "7", 1))
	require.NoError(t, cart.AddToCart(ctx, "u-1", "8", 4))
	require.NoError(t, cart.ClearCart(ctx, "u-1"))

	items, err := cart.GetCart(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetCartRequiresUserID(t *testing.T) {
	_, cart := newCartFixture(t)
	_, err := cart.GetCart(context.Background(), "")
	assert.Error(t, err)
}
