package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/dto"
	"github.com/GlebRadaev/boutique/internal/service/favoriteservice"
	"github.com/GlebRadaev/boutique/pkg/auth"
	"github.com/GlebRadaev/boutique/pkg/utils"
	"github.com/GlebRadaev/boutique/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=favorites.go -destination=mock_favorites.go -package=favorites

type Service interface {
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	Toggle(ctx context.Context, userID, articleID string) (bool, error)
	Check(ctx context.Context, userID, articleID string) (bool, error)
}

type FavoriteHandler struct {
	favoriteService Service
}

func New(favoriteService Service) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	favorites, err := h.favoriteService.List(r.Context(), identity.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, favorites)
}

func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var req dto.ToggleFavoriteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDetails(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	favorited, err := h.favoriteService.Toggle(r.Context(), identity.UserID, req.ArticleID)
	if err != nil {
		switch {
		case errors.Is(err, favoriteservice.ErrArticleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FavoriteStatusResponseDTO{
		ArticleID: req.ArticleID,
		Favorited: favorited,
	})
}

func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())
	articleID := chi.URLParam(r, "articleId")
	if _, err := uuid.Parse(articleID); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	favorited, err := h.favoriteService.Check(r.Context(), identity.UserID, articleID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FavoriteStatusResponseDTO{
		ArticleID: articleID,
		Favorited: favorited,
	})
}
