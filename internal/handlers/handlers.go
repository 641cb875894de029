package handlers

import (
	"net/http"

	balancehandlers "github.com/GlebRadaev/boutique/internal/handlers/balance"
	favoritehandlers "github.com/GlebRadaev/boutique/internal/handlers/favorites"
	ordershandlers "github.com/GlebRadaev/boutique/internal/handlers/orders"
	"github.com/GlebRadaev/boutique/internal/service"
	"github.com/GlebRadaev/boutique/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetSolde(w http.ResponseWriter, r *http.Request)
}

type FavoriteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
}

type Middleware func(http.Handler) http.Handler

type Handlers struct {
	OrderHandler    OrderHandler
	BalanceHandler  BalanceHandler
	FavoriteHandler FavoriteHandler

	Tokens      auth.TokenValidator
	Idempotency Middleware
	Metrics     http.Handler
}

// New builds the HTTP layer. idempotency may be nil, in which case order
// creation is not deduplicated.
func New(s *service.Services, tokens auth.TokenValidator, idempotency Middleware) *Handlers {
	return &Handlers{
		OrderHandler:    ordershandlers.New(s.OrderService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		FavoriteHandler: favoritehandlers.New(s.FavoriteService),
		Tokens:          tokens,
		Idempotency:     idempotency,
		Metrics:         promhttp.Handler(),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.RequireUserAuth(h.Tokens))

		r.Route("/commandes", func(r chi.Router) {
			r.With(h.idempotency).Post("/create", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.ListOrders)
			r.Get("/{id}", h.OrderHandler.GetOrder)
			r.Patch("/{id}/status", h.OrderHandler.UpdateStatus)
		})
		r.Get("/users/me/solde", h.BalanceHandler.GetSolde)
		r.Route("/favoris", func(r chi.Router) {
			r.Get("/", h.FavoriteHandler.List)
			r.Post("/toggle", h.FavoriteHandler.Toggle)
			r.Get("/{articleId}", h.FavoriteHandler.Check)
		})
	})

	return r
}

func (h *Handlers) idempotency(next http.Handler) http.Handler {
	if h.Idempotency == nil {
		return next
	}
	return h.Idempotency(next)
}
