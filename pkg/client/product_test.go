package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocraft-dev/agrocraft-go/internal/testserver"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newProductFixture(t *testing.T) (*testserver.Server, Product) {
	t.Helper()
	backend := testserver.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, NewProductClient(NewBaseClient(server.URL))
}

func TestListProductsAndCategories(t *testing.T) {
	backend, products := newProductFixture(t)
	backend.AddProduct(api.Product{ID: "1", Name: "Milk", Category: "Dairy"})
	backend.AddProduct(api.Product{ID: "2", Name: "Wheat", Category: "Grains"})
	backend.AddProduct(api.Product{ID: "3", Name: "Paneer", Category: "Dairy"})

	ctx := context.Background()
	all, err := products.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	categories, err := products.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dairy", "Grains"}, categories)
}

func TestAddUpdateDeleteProduct(t *testing.T) {
	_, products := newProductFixture(t)
	ctx := context.Background()

	form := NewForm().Set("name", "Tomato").Set("category", "Vegetables").Set("sellerId", "s-1")
	form.AddFile("image", "tomato.jpg", strings.NewReader("jpeg bytes"))

	created, err := products.AddProduct(ctx, form)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := products.UpdateProduct(ctx, created.ID, NewForm().Set("name", "Cherry Tomato"))
	require.NoError(t, err)
	assert.Equal(t, "Cherry Tomato", updated.Name)

	require.NoError(t, products.DeleteProduct(ctx, created.ID))

	_, err = products.GetProduct(ctx, created.ID)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}
