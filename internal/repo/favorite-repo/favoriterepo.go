package favoriterepo

import (
	"context"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	query := `
		SELECT f.user_id, f.article_id, a.nom, a.prix, f.created_at
		FROM favoris f
		JOIN articles a ON a.id = f.article_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list favorites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	favorites := make([]domain.Favorite, 0)
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.UserID, &f.ArticleID, &f.Nom, &f.Prix, &f.CreatedAt); err != nil {
			zap.L().Error("can't scan favorite row", zap.Error(err))
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *Repository) Exists(ctx context.Context, userID, articleID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM favoris WHERE user_id = $1 AND article_id = $2)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, articleID).Scan(&exists); err != nil {
		zap.L().Error("can't check favorite", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Add(ctx context.Context, userID, articleID string) error {
	query := `
		INSERT INTO favoris (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID, articleID); err != nil {
		zap.L().Error("can't add favorite", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, userID, articleID string) error {
	query := `
		DELETE FROM favoris
		WHERE user_id = $1 AND article_id = $2
	`
	if _, err := r.db.Exec(ctx, query, userID, articleID); err != nil {
		zap.L().Error("can't remove favorite", zap.Error(err))
		return err
	}
	return nil
}
