package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/nikolayk812/apnadairy/internal/cart"
	"github.com/nikolayk812/apnadairy/internal/chatbot"
	"github.com/nikolayk812/apnadairy/internal/checkout"
	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/metrics"
	"github.com/nikolayk812/apnadairy/internal/port"
	"github.com/nikolayk812/apnadairy/internal/pricing"
)

// Server exposes the storefront core over JSON/HTTP for the web UI.
type Server struct {
	Router *mux.Router

	products  port.ProductCatalog
	orders    port.OrderRepository
	sellers   port.SellerRepository
	cartStore *cart.Store
	finalizer *checkout.Finalizer
	bot       *chatbot.Bot
	metrics   *metrics.StorefrontMetrics
	logger    *log.Entry
}

func NewServer(
	products port.ProductCatalog,
	orders port.OrderRepository,
	sellers port.SellerRepository,
	cartStore *cart.Store,
	finalizer *checkout.Finalizer,
	bot *chatbot.Bot,
	m *metrics.StorefrontMetrics,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.WithField("component", "httpapi")
	}

	s := &Server{
		Router:    mux.NewRouter(),
		products:  products,
		orders:    orders,
		sellers:   sellers,
		cartStore: cartStore,
		finalizer: finalizer,
		bot:       bot,
		metrics:   m,
		logger:    logger,
	}

	s.Router.HandleFunc("/api/products", s.handleListProducts).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/products", s.handleAddProduct).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/products/{id}", s.handleGetProduct).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/products/{id}", s.handleDeleteProduct).Methods(http.MethodDelete)

	s.Router.HandleFunc("/api/cart", s.handleGetCart).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/cart", s.handleClearCart).Methods(http.MethodDelete)
	s.Router.HandleFunc("/api/cart/items", s.handleAddToCart).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/cart/items/{id}/{unit}", s.handleUpdateQuantity).Methods(http.MethodPut)
	s.Router.HandleFunc("/api/cart/items/{id}/{unit}", s.handleRemoveFromCart).Methods(http.MethodDelete)

	s.Router.HandleFunc("/api/checkout", s.handleCheckout).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/orders", s.handleListOrders).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)

	s.Router.HandleFunc("/api/sellers", s.handleListSellers).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/sellers", s.handleCreateSeller).Methods(http.MethodPost)

	s.Router.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)

	return s
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetProducts(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toProductJSON(p))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := s.products.GetProduct(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toProductJSON(product))
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var in productJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := in.toDomain()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	if err := s.products.AddProduct(r.Context(), product); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toProductJSON(product))
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	deleted, err := s.products.DeleteProduct(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addToCartRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Unit      string    `json:"unit"`
	Quantity  int64     `json:"quantity"`
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var in addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	unit, err := domain.ParseUnit(in.Unit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := s.products.GetProduct(r.Context(), in.ProductID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if !product.Offers(unit) {
		http.Error(w, "product is not sold in this unit", http.StatusBadRequest)
		return
	}

	if err := s.cartStore.Add(product.Line(unit, in.Quantity)); err != nil {
		s.respondError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCartAdd()
	}

	s.respondCart(w, http.StatusCreated)
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, unit, ok := s.lineKeyFromPath(w, r)
	if !ok {
		return
	}

	var in struct {
		Quantity int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.cartStore.UpdateQuantity(id, unit, in.Quantity); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondCart(w, http.StatusOK)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, unit, ok := s.lineKeyFromPath(w, r)
	if !ok {
		return
	}

	if _, err := s.cartStore.Remove(id, unit); err != nil {
		s.respondError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCartRemoval()
	}
	s.respondCart(w, http.StatusOK)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.cartStore.Clear(); err != nil {
		s.respondError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCartClear()
	}
	s.respondCart(w, http.StatusOK)
}

func (s *Server) handleGetCart(w http.ResponseWriter, _ *http.Request) {
	s.respondCart(w, http.StatusOK)
}

type checkoutRequest struct {
	ShippingDetails domain.ShippingDetails `json:"shipping_details"`
	PaymentMethod   string                 `json:"payment_method"`
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var in checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := s.finalizer.PlaceOrder(r.Context(), in.ShippingDetails, domain.PaymentMethod(in.PaymentMethod))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toOrderJSON(order))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.GetOrders(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	out := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := s.orders.GetOrder(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toOrderJSON(order))
}

type createSellerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (s *Server) handleCreateSeller(w http.ResponseWriter, r *http.Request) {
	var in createSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	seller := domain.SellerProfile{
		ID:        uuid.New(),
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.sellers.CreateSeller(r.Context(), seller); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toSellerJSON(seller))
}

func (s *Server) handleListSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := s.sellers.GetSellers(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	out := make([]sellerJSON, 0, len(sellers))
	for _, seller := range sellers {
		out = append(out, toSellerJSON(seller))
	}
	s.respondJSON(w, http.StatusOK, out)
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var in chatRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := s.bot.Reply(in.Prompt)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondJSON(w, http.StatusOK, chatResponse{Response: answer})
}

func (s *Server) lineKeyFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.Unit, bool) {
	vars := mux.Vars(r)

	id, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return uuid.Nil, "", false
	}

	unit, err := domain.ParseUnit(vars["unit"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return uuid.Nil, "", false
	}

	return id, unit, true
}

func (s *Server) respondCart(w http.ResponseWriter, status int) {
	lines := s.cartStore.Lines()

	total, err := pricing.CartTotal(lines)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, status, toCartJSON(lines, total))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Warn("failed to encode response")
	}
}

// respondError maps domain outcomes onto HTTP statuses: not-found is a
// distinct outcome, validation failures block the operation, anything else
// is an upstream failure the shopper can retry.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case isValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.WithError(err).Error("request failed")
		http.Error(w, "service temporarily unavailable, please try again", http.StatusBadGateway)
	}
}

func isValidationError(err error) bool {
	for _, validation := range []error{
		domain.ErrProductIDRequired,
		domain.ErrQuantityInvalid,
		domain.ErrUnitInvalid,
		domain.ErrPriceNegative,
		domain.ErrEmptyCart,
		domain.ErrShippingIncomplete,
		domain.ErrPaymentMethodRequired,
		domain.ErrPaymentMethodInvalid,
	} {
		if errors.Is(err, validation) {
			return true
		}
	}
	return false
}
