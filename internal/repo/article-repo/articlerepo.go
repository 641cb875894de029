package articlerepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	query := `
		SELECT id, nom, prix, prix_promo, is_promotion, boutique_id
		FROM articles
		WHERE id = $1
	`
	var a domain.Article
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Nom, &a.Prix, &a.PrixPromo, &a.IsPromotion, &a.BoutiqueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find article", zap.String("article_id", id), zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindVariation(ctx context.Context, id string) (*domain.Variation, error) {
	query := `
		SELECT id, article_id, couleur, taille, stock, prix
		FROM variations
		WHERE id = $1
	`
	var v domain.Variation
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.ArticleID, &v.Couleur, &v.Taille, &v.Stock, &v.Prix)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find variation", zap.String("variation_id", id), zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListVariations(ctx context.Context, articleID string) ([]domain.Variation, error) {
	query := `
		SELECT id, article_id, couleur, taille, stock, prix
		FROM variations
		WHERE article_id = $1
	`
	rows, err := r.db.Query(ctx, query, articleID)
	if err != nil {
		zap.L().Error("can't list variations", zap.String("article_id", articleID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var variations []domain.Variation
	for rows.Next() {
		var v domain.Variation
		if err := rows.Scan(&v.ID, &v.ArticleID, &v.Couleur, &v.Taille, &v.Stock, &v.Prix); err != nil {
			zap.L().Error("can't scan variation row", zap.Error(err))
			return nil, err
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

// DecrementStock removes qty units from the variation in one conditional
// statement. It reports false when the row is missing or holds less than qty.
func (r *Repository) DecrementStock(ctx context.Context, variationID string, qty int) (bool, error) {
	query := `
		UPDATE variations
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2
	`
	tag, err := r.db.Exec(ctx, query, variationID, qty)
	if err != nil {
		zap.L().Error("can't decrement stock", zap.String("variation_id", variationID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
