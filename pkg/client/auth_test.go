package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocraft-dev/agrocraft-go/internal/session"
	"github.com/agrocraft-dev/agrocraft-go/internal/testserver"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newAuthFixture(t *testing.T) (*testserver.Server, *ClientSet) {
	t.Helper()
	backend := testserver.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, New(server.URL)
}

// Login as a Farmer, read the session back, log out.
func TestLoginLogoutLifecycle(t *testing.T) {
	backend, clients := newAuthFixture(t)
	backend.AddUser(api.User{ID: "u-42", Email: "ravi@farm.example", Role: "Farmer"}, "secret")

	ctx := context.Background()
	login, err := clients.Auth.Login(ctx, &api.LoginRequest{Email: "ravi@farm.example", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "u-42", login.UserID)

	role, err := session.ParseRole(login.Role)
	require.NoError(t, err)

	store := session.NewCookieStore()
	require.NoError(t, session.Begin(store, login.UserID, role, session.DefaultTTL))

	stored, ok := store.Get(session.KeyRole)
	require.True(t, ok)
	assert.Equal(t, "Farmer", stored)

	session.End(store)
	_, ok = store.Get(session.KeyUserID)
	assert.False(t, ok)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	backend, clients := newAuthFixture(t)
	backend.AddUser(api.User{ID: "u-42", Email: "ravi@farm.example", Role: "Farmer"}, "secret")

	_, err := clients.Auth.Login(context.Background(), &api.LoginRequest{
		Email:    "ravi@farm.example",
		Password: "wrong",
	})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindApplication, apiErr.Kind)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestRegisterSendsMultipart(t *testing.T) {
	_, clients := newAuthFixture(t)

	form := NewForm().
		Set("name", "Ravi").
		Set("email", "ravi@farm.example").
		Set("password", "secret").
		Set("role", "Farmer")
	form.AddFile("photo", "ravi.jpg", strings.NewReader("fake photo"))

	status, err := clients.Auth.Register(context.Background(), form)
	require.NoError(t, err)
	assert.True(t, status.Success)

	// The new account can log in.
	login, err := clients.Auth.Login(context.Background(), &api.LoginRequest{
		Email:    "ravi@farm.example",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Farmer", login.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	backend, clients := newAuthFixture(t)
	backend.AddUser(api.User{ID: "u-1", Email: "taken@farm.example", Role: "Customer"}, "pw")

	form := NewForm().Set("email", "taken@farm.example").Set("password", "pw")
	_, err := clients.Auth.Register(context.Background(), form)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestVerifyAndRegenerateOTP(t *testing.T) {
	_, clients := newAuthFixture(t)
	ctx := context.Background()

	status, err := clients.Auth.Verify(ctx, "ravi@farm.example", "123456")
	require.NoError(t, err)
	assert.True(t, status.Success)

	status, err = clients.Auth.RegenerateOTP(ctx, "ravi@farm.example")
	require.NoError(t, err)
	assert.True(t, status.Success)
}
