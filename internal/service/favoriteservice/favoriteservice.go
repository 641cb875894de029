package favoriteservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/boutique/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=favoriteservice.go -destination=mock_favoriteservice.go -package=favoriteservice

type FavoriteRepo interface {
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID, articleID string) (bool, error)
	Add(ctx context.Context, userID, articleID string) error
	Remove(ctx context.Context, userID, articleID string) error
}

type ArticleRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Article, error)
}

type Service struct {
	favorites FavoriteRepo
	articles  ArticleRepo
}

func New(favorites FavoriteRepo, articles ArticleRepo) *Service {
	return &Service{
		favorites: favorites,
		articles:  articles,
	}
}

var ErrArticleNotFound = errors.New("article not found")

func (s *Service) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	favorites, err := s.favorites.List(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list favorites", zap.Error(err))
		return nil, err
	}
	return favorites, nil
}

// Toggle adds the article to the user's favorites when absent and removes it
// otherwise. It reports whether the article is a favorite afterwards.
func (s *Service) Toggle(ctx context.Context, userID, articleID string) (bool, error) {
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		zap.L().Error("failed to load article", zap.Error(err))
		return false, err
	}
	if article == nil {
		return false, ErrArticleNotFound
	}

	exists, err := s.favorites.Exists(ctx, userID, articleID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.favorites.Remove(ctx, userID, articleID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.favorites.Add(ctx, userID, articleID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Check(ctx context.Context, userID, articleID string) (bool, error) {
	return s.favorites.Exists(ctx, userID, articleID)
}
