// Package testserver is an in-memory AgroCraft backend used by the client
// tests. It implements just enough of the HTTP surface to exercise every
// sub-client, including the server-side contracts the client assumes
// (idempotent wishlist adds, absolute cart quantity updates).
package testserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

// Server holds the mock marketplace state.
type Server struct {
	mu        sync.Mutex
	users     map[string]api.User   // by email
	passwords map[string]string     // by email
	products  map[string]api.Product
	wishlists map[string][]string            // userID -> productIDs, ordered
	carts     map[string]map[string]int      // userID -> productID -> quantity
	accounts  map[string]api.PaymentAccount  // by userID
	orders    map[string]api.Order           // by order ID
	dairy     map[string]api.DairyProduct    // by ID
	bookings  []api.Booking

	router *mux.Router
}

// New creates an empty mock backend.
func New() *Server {
	s := &Server{
		users:     make(map[string]api.User),
		passwords: make(map[string]string),
		products:  make(map[string]api.Product),
		wishlists: make(map[string][]string),
		carts:     make(map[string]map[string]int),
		accounts:  make(map[string]api.PaymentAccount),
		orders:    make(map[string]api.Order),
		dairy:     make(map[string]api.DairyProduct),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// AddUser seeds an account with credentials.
func (s *Server) AddUser(user api.User, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
	s.passwords[user.Email] = password
}

// AddProduct seeds a catalog listing.
func (s *Server) AddProduct(product api.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = product
}

// AddOrder seeds a payment record.
func (s *Server) AddOrder(order api.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

// CartQuantity reports the stored quantity for one cart line.
func (s *Server) CartQuantity(userID, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[userID][productID]
}

func (s *Server) routes() {
	r := mux.NewRouter()

	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/verify", s.handleAck).Methods(http.MethodPut)
	r.HandleFunc("/regenerate-otp", s.handleAck).Methods(http.MethodPut)
	r.HandleFunc("/forgot-password", s.handleAck).Methods(http.MethodPost)
	r.HandleFunc("/reset-password", s.handleAck).Methods(http.MethodPost)

	r.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	r.HandleFunc("/updateProfile", s.handleUpdateProfile).Methods(http.MethodPut)
	r.HandleFunc("/users/update/{id}", s.handleUpdateProfileByID).Methods(http.MethodPut)

	r.HandleFunc("/products/all", s.handleListProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/categories", s.handleListCategories).Methods(http.MethodGet)
	r.HandleFunc("/products/add", s.handleAddProduct).Methods(http.MethodPost)
	r.HandleFunc("/products/update/{id}", s.handleUpdateProduct).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", s.handleGetProduct).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", s.handleDeleteProduct).Methods(http.MethodDelete)

	r.HandleFunc("/wishlist/{userId}", s.handleGetWishlist).Methods(http.MethodGet)
	r.HandleFunc("/wishlist/{userId}/{productId}", s.handleAddToWishlist).Methods(http.MethodPost)
	r.HandleFunc("/wishlist/{userId}/{productId}", s.handleRemoveFromWishlist).Methods(http.MethodDelete)

	r.HandleFunc("/cart/clear/{userId}", s.handleClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/{userId}", s.handleGetCart).Methods(http.MethodGet)
	r.HandleFunc("/cart/{userId}/{productId}/{quantity}", s.handleSetCart).Methods(http.MethodPost, http.MethodPut)
	r.HandleFunc("/cart/{userId}/{productId}", s.handleRemoveFromCart).Methods(http.MethodDelete)

	r.HandleFunc("/api/payment/register/{userId}", s.handleRegisterPayment).Methods(http.MethodPost)
	r.HandleFunc("/api/payment/user/{userId}", s.handleGetPaymentAccount).Methods(http.MethodGet)
	r.HandleFunc("/payment/merchant/{sellerId}", s.handleOrdersBySeller).Methods(http.MethodGet)
	r.HandleFunc("/payment/customer/orders/{customerId}", s.handleOrdersByCustomer).Methods(http.MethodGet)
	r.HandleFunc("/payment/create", s.handleCreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/payment/{id}", s.handleGetPayment).Methods(http.MethodGet)

	r.HandleFunc("/api/dairy/save", s.handleSaveDairy).Methods(http.MethodPost)
	r.HandleFunc("/api/dairy/list", s.handleListDairy).Methods(http.MethodGet)
	r.HandleFunc("/api/bookings/book", s.handleBook).Methods(http.MethodPost)
	r.HandleFunc("/api/bookings/all", s.handleListBookings).Methods(http.MethodGet)

	s.router = r
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// requireMultipart rejects requests whose content type is not form data with
// a boundary. The real backend does the same, which is how a forced JSON
// content type on file-bearing requests shows up as a failure.
func requireMultipart(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") || !strings.Contains(ct, "boundary=") {
		writeError(w, http.StatusUnsupportedMediaType, "expected multipart/form-data")
		return false
	}
	return true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[req.Email]
	if !ok || s.passwords[req.Email] != req.Password {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, api.LoginResponse{UserID: user.ID, Role: user.Role})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !requireMultipart(w, r) {
		return
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	email := r.FormValue("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	s.users[email] = api.User{
		ID:    uuid.NewString(),
		Name:  r.FormValue("name"),
		Email: email,
		Role:  r.FormValue("role"),
	}
	s.passwords[email] = r.FormValue("password")
	writeJSON(w, http.StatusCreated, api.StatusResponse{Success: true, Message: "verification OTP sent"})
}

func (s *Server) handleAck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.StatusResponse{Success: true})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			writeJSON(w, http.StatusOK, user)
			return
		}
	}
	writeError(w, http.StatusNotFound, "user not found")
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if !requireMultipart(w, r) {
		return
	}
	s.updateUserByID(w, r, r.URL.Query().Get("userId"))
}

func (s *Server) handleUpdateProfileByID(w http.ResponseWriter, r *http.Request) {
	if !requireMultipart(w, r) {
		return
	}
	s.updateUserByID(w, r, mux.Vars(r)["id"])
}

func (s *Server) updateUserByID(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for email, user := range s.users {
		if user.ID != id {
			continue
		}
		if name := r.FormValue("name"); name != "" {
			user.Name = name
		}
		if address := r.FormValue("address"); address != "" {
			user.Address = address
		}
		if phone := r.FormValue("phone"); phone != "" {
			user.Phone = phone
		}
		s.users[email] = user
		writeJSON(w, http.StatusOK, user)
		return
	}
	writeError(w, http.StatusNotFound, "user not found")
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	if !requireMultipart(w, r) {
		return
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	product := api.Product{
		ID:       uuid.NewString(),
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		SellerID: r.FormValue("sellerId"),
	}
	if product.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = product
	writeJSON(w, http.StatusCreated, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	if !requireMultipart(w, r) {
		return
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if name := r.FormValue("name"); name != "" {
		product.Name = name
	}
	s.products[product.ID] = product
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := mux.Vars(r)["id"]
	if _, ok := s.products[id]; !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	delete(s.products, id)
	writeJSON(w, http.StatusOK, api.StatusResponse{Success: true})
}

func (s *Server) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID := mux.Vars(r)["userId"]
	out := make([]api.WishlistItem, 0, len(s.wishlists[userID]))
	for _, productID := range s.wishlists[userID] {
		out = append(out, api.WishlistItem{ProductID: productID, Product: s.products[productID]})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddToWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, productID := vars["userId"], vars["productId"]

	s.mu.Lock()
	defer s.mu.Unlock()
	// Adding an already-present product must not duplicate it.
	for _, existing := range s.wishlists[userID] {
		if existing == productID {
			writeJSON(w, http.StatusOK, api.StatusResponse{Success: true})
			return
		}
	}
	s.wishlists[userID] = append(s.wishlists[userID], productID)
	writeJSON(w, http.StatusCreated, api.StatusResponse{Success: true})
}

func (s *Server) handleRemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, productID := vars["userId"], vars["productId"]

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.wishlists[userID]
	for i, existing := range items {
		if existing == productID {
			s.wishlists[userID] = append(items[:i], items[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, api.StatusResponse{Success: true})
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID := mux.Vars(r)["userId"]
	out := make([]api.CartItem, 0, len(s.carts[userID]))
	for productID, quantity := range s.carts[userID] {
		out = append(out, api.CartItem{Product: s.products[productID], Quantity: quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.ID < out[j].Product.ID })
	writeJSON(w, http.StatusOK, out)
}

// handleSetCart covers both add (POST) and update (PUT). The quantity in the
// path is stored as-is: an update replaces the previous value rather than
// incrementing it.
func (s *Server) handleSetCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, productID := vars["userId"], vars["productId"]
	quantity, err := strconv.Atoi(vars["quantity"])
	if err != nil || quantity < 1 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid quantity %q", vars["quantity"]))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carts[userID] == nil {
		s.carts[userID] = make(map[string]int)
	}
	s.carts[userID][productID] = quantity
	writeJSON(w, http.StatusOK, api.StatusResponse{Success: true})
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts[vars["userId"]], vars["productId"])
	writeJSON(w, http.StatusOK, api.StatusResponse{Success: true})
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, mux.Vars(r)["userId"])
	writeJSON(w, http.StatusOK, api.StatusResponse{Success: true})
}

func (s *Server) handleRegisterPayment(w http.ResponseWriter, r *http.Request) {
	var account api.PaymentAccount
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	account.ID = uuid.NewString()
	account.UserID = mux.Vars(r)["userId"]

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.UserID] = account
	writeJSON(w, http.StatusCreated, account)
}

func (s *Server) handleGetPaymentAccount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[mux.Vars(r)["userId"]]
	if !ok {
		writeError(w, http.StatusNotFound, "payment account not found")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) handleOrdersBySeller(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sellerID := mux.Vars(r)["sellerId"]
	out := make([]api.Order, 0)
	for _, order := range s.orders {
		if order.SellerID == sellerID {
			out = append(out, order)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleOrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customerID := mux.Vars(r)["customerId"]
	out := make([]api.Order, 0)
	for _, order := range s.orders {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req api.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order := api.Order{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Amount:    req.Amount,
		Status:    "created",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handleSaveDairy(w http.ResponseWriter, r *http.Request) {
	var product api.DairyProduct
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product.ID = uuid.NewString()
	product.SellerID = r.URL.Query().Get("userId")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dairy[product.ID] = product
	writeJSON(w, http.StatusCreated, product)
}

func (s *Server) handleListDairy(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.DairyProduct, 0, len(s.dairy))
	for _, product := range s.dairy {
		out = append(out, product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	var booking api.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if booking.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	booking.ID = uuid.NewString()
	booking.Status = "booked"

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, booking)
	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Booking, len(s.bookings))
	copy(out, s.bookings)
	writeJSON(w, http.StatusOK, out)
}
