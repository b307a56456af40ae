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

func newPaymentFixture(t *testing.T) (*testserver.Server, Payment) {
	t.Helper()
	backend := testserver.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, NewPaymentClient(NewBaseClient(server.URL))
}

func TestRegisterAndFetchPaymentAccount(t *testing.T) {
	_, payment := newPaymentFixture(t)
	ctx := context.Background()

	created, err := payment.RegisterPaymentAccount(ctx, "u-1", &api.PaymentAccount{
		AccountNumber: "000111222",
		HolderName:    "Ravi",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.UserID)
	assert.NotEmpty(t, created.ID)

	fetched, err := payment.GetPaymentAccountByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "000111222", fetched.AccountNumber)
}

func TestPaymentAccountNotFound(t *testing.T) {
	_, payment := newPaymentFixture(t)

	_, err := payment.GetPaymentAccountByUserID(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindApplication, apiErr.Kind)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestOrdersBySellerAndCustomer(t *testing.T) {
	backend, payment := newPaymentFixture(t)
	backend.AddOrder(api.Order{ID: "o-1", SellerID: "s-1", CustomerID: "c-1", Amount: decimal.NewFromInt(90)})
	backend.AddOrder(api.Order{ID: "o-2", SellerID: "s-1", CustomerID: "c-2", Amount: decimal.NewFromInt(50)})
	backend.AddOrder(api.Order{ID: "o-3", SellerID: "s-2", CustomerID: "c-1", Amount: decimal.NewFromInt(25)})

	ctx := context.Background()
	sellerOrders, err := payment.GetOrdersBySeller(ctx, "s-1")
	require.NoError(t, err)
	assert.Len(t, sellerOrders, 2)

	customerOrders, err := payment.GetOrdersByCustomer(ctx, "c-1")
	require.NoError(t, err)
	assert.Len(t, customerOrders, 2)
}

func TestCreateAndGetOrder(t *testing.T) {
	_, payment := newPaymentFixture(t)
	ctx := context.Background()

	order, err := payment.CreateOrder(ctx, &api.CreateOrderRequest{
		ProductID: "p-1",
		Amount:    decimal.NewFromInt(180),
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	assert.Equal(t, "created", order.Status)

	fetched, err := payment.GetPayment(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Amount.Equal(decimal.NewFromInt(180)))
}
