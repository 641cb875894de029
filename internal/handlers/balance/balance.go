package balance

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/dto"
	balanceservice "github.com/GlebRadaev/boutique/internal/service/balanceservice"
	"github.com/GlebRadaev/boutique/pkg/auth"
	"github.com/GlebRadaev/boutique/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	GetSolde(ctx context.Context, userID string) (*domain.User, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

func (h *BalanceHandler) GetSolde(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	user, err := h.balanceService.GetSolde(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SoldeResponseDTO{
		UserID: user.ID,
		Solde:  user.Solde,
	})
}
