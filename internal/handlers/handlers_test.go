package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/boutique/internal/handlers/balance"
	"github.com/GlebRadaev/boutique/internal/handlers/favorites"
	"github.com/GlebRadaev/boutique/internal/handlers/orders"
	"github.com/GlebRadaev/boutique/internal/service"
	"github.com/GlebRadaev/boutique/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const secret = "test-secret"

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		OrderService:    orders.NewMockService(ctrl),
		BalanceService:  balance.NewMockService(ctrl),
		FavoriteService: favorites.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService(secret), nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Metrics)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockFavoriteHandler := NewMockFavoriteHandler(ctrl)

	mockOrderHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBalanceHandler.EXPECT().GetSolde(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockFavoriteHandler.EXPECT().List(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockFavoriteHandler.EXPECT().Toggle(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockFavoriteHandler.EXPECT().Check(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	idempotencyCalls := 0
	jwtService := auth.NewJWTService(secret)
	h := &Handlers{
		OrderHandler:    mockOrderHandler,
		BalanceHandler:  mockBalanceHandler,
		FavoriteHandler: mockFavoriteHandler,
		Tokens:          jwtService,
		Idempotency: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				idempotencyCalls++
				next.ServeHTTP(w, r)
			})
		},
		Metrics: http.HandlerFunc(ok),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := jwtService.GenerateJWT(auth.Identity{
		UserID: "0b7e3a52-6a3c-4a39-9a55-5d6a3d1d2f10",
		Role:   auth.RoleClient,
	}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		authed bool
		status int
	}{
		{"POST", "/api/commandes/create", false, http.StatusUnauthorized},
		{"GET", "/api/commandes", false, http.StatusUnauthorized},
		{"GET", "/api/users/me/solde", false, http.StatusUnauthorized},
		{"POST", "/api/favoris/toggle", false, http.StatusUnauthorized},
		{"POST", "/api/commandes/create", true, http.StatusOK},
		{"GET", "/api/commandes", true, http.StatusOK},
		{"GET", "/api/commandes/o1", true, http.StatusOK},
		{"PATCH", "/api/commandes/o1/status", true, http.StatusOK},
		{"GET", "/api/users/me/solde", true, http.StatusOK},
		{"GET", "/api/favoris", true, http.StatusOK},
		{"POST", "/api/favoris/toggle", true, http.StatusOK},
		{"GET", "/api/favoris/a1", true, http.StatusOK},
		{"GET", "/metrics", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.authed {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
	assert.Equal(t, 1, idempotencyCalls, "only order creation is deduplicated")
}
