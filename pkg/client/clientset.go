package client

// ClientSet bundles every domain sub-client over one shared BaseClient.
type ClientSet struct {
	Auth     Auth
	User     User
	Product  Product
	Wishlist Wishlist
	Cart     Cart
	Payment  Payment
	Dairy    Dairy
	Booking  Booking

	base *BaseClient
}

// New creates a ClientSet rooted at the given base URL.
func New(baseURL string, opts ...Option) *ClientSet {
	base := NewBaseClient(baseURL, opts...)
	return &ClientSet{
		Auth:     NewAuthClient(base),
		User:     NewUserClient(base),
		Product:  NewProductClient(base),
		Wishlist: NewWishlistClient(base),
		Cart:     NewCartClient(base),
		Payment:  NewPaymentClient(base),
		Dairy:    NewDairyClient(base),
		Booking:  NewBookingClient(base),
		base:     base,
	}
}

// Base exposes the underlying BaseClient.
func (c *ClientSet) Base() *BaseClient {
	return c.base
}
