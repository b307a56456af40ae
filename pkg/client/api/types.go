package api

import "github.com/shopspring/decimal"

// User is the account record returned by the user endpoints.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Verified bool   `json:"verified"`
}

// Product is a marketplace listing. Price is the undiscounted unit price and
// Discount is a percentage in [0, 100].
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Quantity    int             `json:"quantity,omitempty"`
	SellerID    string          `json:"sellerId,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// WishlistItem is one wishlist line for a user.
type WishlistItem struct {
	ProductID string  `json:"productId"`
	Product   Product `json:"product"`
}

// CartItem is one cart line. Quantity is always >= 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// PaymentAccount holds a seller's payout details.
type PaymentAccount struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc,omitempty"`
	HolderName    string `json:"holderName,omitempty"`
	UPI           string `json:"upi,omitempty"`
}

// Order is a completed or pending payment record.
type Order struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productId"`
	CustomerID string          `json:"customerId"`
	SellerID   string          `json:"sellerId"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt,omitempty"`
}

// DairyProduct is a bookable dairy listing.
type DairyProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit,omitempty"`
	SellerID string          `json:"sellerId,omitempty"`
}

// Booking reserves a dairy product for a customer.
type Booking struct {
	ID         string `json:"id,omitempty"`
	ProductID  string `json:"productId"`
	CustomerID string `json:"customerId"`
	Quantity   int    `json:"quantity"`
	Date       string `json:"date,omitempty"`
	Status     string `json:"status,omitempty"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	UserID  string `json:"userId"`
	Role    string `json:"role"`
	Message string `json:"message,omitempty"`
}

// VerifyRequest confirms an account with the OTP sent on registration.
type VerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest completes a forgot-password flow.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// StatusResponse is the generic acknowledgment body used by mutation
// endpoints that return no resource.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreateOrderRequest starts a checkout for a single product.
type CreateOrderRequest struct {
	ProductID string          `json:"productId"`
	Amount    decimal.Decimal `json:"amount"`
}
