package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocraft-dev/agrocraft-go/internal/testserver"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newUserFixture(t *testing.T) (*testserver.Server, User) {
	t.Helper()
	backend := testserver.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, NewUserClient(NewBaseClient(server.URL))
}

func TestGetUser(t *testing.T) {
	backend, users := newUserFixture(t)
	backend.AddUser(api.User{ID: "u-1", Name: "Ravi", Email: "ravi@farm.example", Role: "Farmer"}, "pw")

	user, err := users.GetUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", user.Name)
	assert.Equal(t, "Farmer", user.Role)
}

func TestUpdateProfile(t *testing.T) {
	backend, users := newUserFixture(t)
	backend.AddUser(api.User{ID: "u-1", Name: "Ravi", Email: "ravi@farm.example", Role: "Farmer"}, "pw")

	form := NewForm().Set("name", "Ravi Kumar").Set("address", "Village Road 12")
	updated, err := users.UpdateProfile(context.Background(), "u-1", form)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", updated.Name)
	assert.Equal(t, "Village Road 12", updated.Address)
}

func TestUpdateUserByID(t *testing.T) {
	backend, users := newUserFixture(t)
	backend.AddUser(api.User{ID: "u-1", Name: "Ravi", Email: "ravi@farm.example", Role: "Farmer"}, "pw")

	updated, err := users.UpdateUser(context.Background(), "u-1", NewForm().Set("phone", "9900112233"))
	require.NoError(t, err)
	assert.Equal(t, "9900112233", updated.Phone)
}

func TestUpdateProfileRequiresUserID(t *testing.T) {
	_, users := newUserFixture(t)
	_, err := users.UpdateProfile(context.Background(), "", NewForm())
	assert.Error(t, err)
}
