package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, nom, email, role, solde
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Nom, &user.Email, &user.Role, &user.Solde)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindAdmin returns the platform account, the oldest user with the admin role.
func (repo *Repository) FindAdmin(ctx context.Context) (*domain.User, error) {
	query := `
		SELECT id, nom, email, role, solde
		FROM users
		WHERE role = 'admin'
		ORDER BY created_at ASC
		LIMIT 1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query).Scan(&user.ID, &user.Nom, &user.Email, &user.Role, &user.Solde)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find platform account", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// IncrementSolde adds amount to the user's balance in a single statement.
func (repo *Repository) IncrementSolde(ctx context.Context, userID string, amount int64) error {
	query := `
		UPDATE users
		SET solde = solde + $2
		WHERE id = $1
	`
	tag, err := repo.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("can't increment solde", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
