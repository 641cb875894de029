package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/dto"
	orderservice "github.com/GlebRadaev/boutique/internal/service/orderservice"
	"github.com/GlebRadaev/boutique/pkg/auth"
	"github.com/GlebRadaev/boutique/pkg/utils"
	"github.com/GlebRadaev/boutique/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	CreateOrder(ctx context.Context, in orderservice.CreateInput) (*domain.Order, error)
	ListOrders(ctx context.Context, clientID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, requester auth.Identity, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, requester auth.Identity, id, status string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder places an order for the authenticated buyer and answers 201 with
// the persisted order and its lines.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(w, err)
		return
	}

	in := orderservice.CreateInput{
		ClientID:         identity.UserID,
		IsLivrable:       *req.IsLivrable,
		Commentaire:      req.Commentaire,
		AdresseLivraison: *req.AdresseLivraison,
		Items:            make([]orderservice.LineInput, len(req.Articles)),
	}
	for i, a := range req.Articles {
		in.Items[i] = orderservice.LineInput{
			ArticleID:   a.ArticleID,
			VariationID: a.VariationID,
			Quantite:    a.Quantite,
		}
	}

	order, err := h.orderService.CreateOrder(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	orders, err := h.orderService.ListOrders(r.Context(), identity.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// orderID returns the {id} path parameter; a value that is not a UUID cannot
// name an order.
func orderID(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, orderservice.ErrOrderNotFound.Error())
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, orderservice.ErrOrderNotFound.Error())
		return
	}

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(w, err)
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), identity, id, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func respondValidation(w http.ResponseWriter, err error) {
	var fields validate.FieldErrors
	if errors.As(err, &fields) {
		utils.RespondWithDetails(w, http.StatusBadRequest, "Validation failed", fields)
		return
	}
	utils.RespondWithError(w, http.StatusBadRequest, err.Error())
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrValidation),
		errors.Is(err, orderservice.ErrArticleNotFound),
		errors.Is(err, orderservice.ErrVariationNotFound),
		errors.Is(err, orderservice.ErrInsufficientStock):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, orderservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, orderservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		zap.L().Error("order request failed", zap.Error(err))
		utils.RespondWithDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
