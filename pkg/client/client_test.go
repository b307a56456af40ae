package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func TestNetworkFailureNormalized(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing is listening anymore

	c := NewBaseClient(server.URL)
	_, err := c.Get(context.Background(), "/products/all")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindNetwork, apiErr.Kind)
	assert.Equal(t, api.NetworkErrorMessage, apiErr.Message)
	assert.Error(t, apiErr.Unwrap())
}

func TestApplicationErrorSurfacesMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "bad request"}`))
	}))
	defer server.Close()

	c := NewBaseClient(server.URL)
	_, err := c.Get(context.Background(), "/whatever")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindApplication, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "bad request", apiErr.Message)
}

func TestApplicationErrorFallsBackOnUnstructuredBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewBaseClient(server.URL)
	_, err := c.Get(context.Background(), "/whatever")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindApplication, apiErr.Kind)
	assert.Equal(t, api.GenericErrorMessage, apiErr.Message)
}

func TestMalformedSuccessBodyIsUnexpected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := NewBaseClient(server.URL)
	resp, err := c.Get(context.Background(), "/whatever")
	require.NoError(t, err)

	var out map[string]string
	err = DecodeResponse(resp, &out)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindUnexpected, apiErr.Kind)
}

func TestJSONRequestsCarryJSONContentType(t *testing.T) {
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewBaseClient(server.URL)
	resp, err := c.Post(context.Background(), "/login", map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
	require.NoError(t, DecodeResponse(resp, nil))

	assert.Equal(t, "application/json", contentType)
}

func TestMultipartRequestsCarryBoundaryContentType(t *testing.T) {
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Tomato", r.FormValue("name"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	form := NewForm().Set("name", "Tomato")
	form.AddFile("image", "tomato.jpg", strings.NewReader("fake image bytes"))

	c := NewBaseClient(server.URL)
	resp, err := c.PostForm(context.Background(), "/products/add", form)
	require.NoError(t, err)
	require.NoError(t, DecodeResponse(resp, nil))

	assert.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="),
		"content type %q must be multipart with a boundary, never JSON", contentType)
}

func TestRequestsCarryRequestID(t *testing.T) {
	seen := make(map[string]bool)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewBaseClient(server.URL)
	for i := 0; i < 3; i++ {
		resp, err := c.Get(context.Background(), "/products/all")
		require.NoError(t, err)
		require.NoError(t, DecodeResponse(resp, nil))
	}

	delete(seen, "")
	assert.Len(t, seen, 3, "each request gets its own ID")
}

func TestPathEscapingOfIdentifiers(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	wishlist := NewWishlistClient(NewBaseClient(server.URL))
	_, err := wishlist.GetWishlist(context.Background(), "user/0 1")
	require.NoError(t, err)

	assert.Equal(t, "/wishlist/user%2F0%201", path)
}

func TestGetUserIDOrDefault(t *testing.T) {
	c := NewBaseClient("http://example.invalid", WithUserID("default-user"))
	assert.Equal(t, "explicit", c.GetUserIDOrDefault("explicit"))
	assert.Equal(t, "default-user", c.GetUserIDOrDefault(""))
}
