package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/models"
	"github.com/shopspring/decimal"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if items == nil {
		items = []models.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}

type placeOrderRequest struct {
	Items []models.OrderLine `json:"items"`
}

type placeOrderResponse struct {
	OrderID    string          `json:"order_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "Order must contain at least one item")
		return
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, "Quantity must be positive")
			return
		}
	}

	order, err := h.store.PlaceOrder(r.Context(), req.Items)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, placeOrderResponse{
		OrderID:    order.ID,
		TotalPrice: order.TotalPrice,
	})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.store.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, order)
}

type paymentRequest struct {
	OrderID       string `json:"order_id"`
	PaymentMethod string `json:"payment_method"`
}

func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "Missing order_id")
		return
	}

	err := h.store.MarkPaid(r.Context(), req.OrderID, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Payment processed successfully"})
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.GetSummary(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
