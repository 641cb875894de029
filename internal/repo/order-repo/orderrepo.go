package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = `id, numero, client_id, is_livrable, commentaire, adresse_livraison, prix_total, frais_livraison, status, created_at, updated_at`

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(&o.ID, &o.Numero, &o.ClientID, &o.IsLivrable, &o.Commentaire, &o.AdresseLivraison,
		&o.PrixTotal, &o.FraisLivraison, &o.Status, &o.CreatedAt, &o.UpdatedAt)
}

// CountSince counts orders created at or after since.
func (r *Repository) CountSince(ctx context.Context, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM commandes
		WHERE created_at >= $1
	`
	var n int
	if err := r.db.QueryRow(ctx, query, since).Scan(&n); err != nil {
		zap.L().Error("can't count orders", zap.Error(err))
		return 0, err
	}
	return n, nil
}

// Save inserts the order header and its lines, filling generated ids and timestamps.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	headerQuery := `
		INSERT INTO commandes (numero, client_id, is_livrable, commentaire, adresse_livraison, prix_total, frais_livraison, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	lineQuery := `
		INSERT INTO commande_articles (commande_id, article_id, variation_id, quantite, prix_unitaire, frais)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, headerQuery,
			order.Numero, order.ClientID, order.IsLivrable, order.Commentaire, order.AdresseLivraison,
			order.PrixTotal, order.FraisLivraison, order.Status,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}

		for i := range order.Lines {
			line := &order.Lines[i]
			line.CommandeID = order.ID
			err := r.db.QueryRow(ctx, lineQuery,
				line.CommandeID, line.ArticleID, line.VariationID, line.Quantite, line.PrixUnitaire, line.Frais,
			).Scan(&line.ID)
			if err != nil {
				zap.L().Error("can't save order line", zap.String("order_id", order.ID), zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM commandes WHERE id = $1`

	var order domain.Order
	err := scanOrder(r.db.QueryRow(ctx, query, id), &order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}

	lines, err := r.findLines(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Lines = lines[order.ID]
	return &order, nil
}

func (r *Repository) FindByClientID(ctx context.Context, clientID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM commandes WHERE client_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}
	return orders, nil
}

func (r *Repository) findLines(ctx context.Context, orderIDs []string) (map[string][]domain.OrderLine, error) {
	query := `
		SELECT id, commande_id, article_id, variation_id, quantite, prix_unitaire, frais
		FROM commande_articles
		WHERE commande_id = ANY($1)
	`
	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		zap.L().Error("can't get order lines", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	lines := make(map[string][]domain.OrderLine, len(orderIDs))
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ID, &l.CommandeID, &l.ArticleID, &l.VariationID, &l.Quantite, &l.PrixUnitaire, &l.Frais); err != nil {
			zap.L().Error("can't scan order line row", zap.Error(err))
			return nil, err
		}
		lines[l.CommandeID] = append(lines[l.CommandeID], l)
	}
	return lines, rows.Err()
}

// UpdateStatus sets the status label and returns the updated header, or nil if the order does not exist.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	query := `
		UPDATE commandes
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns

	var order domain.Order
	err := scanOrder(r.db.QueryRow(ctx, query, id, status), &order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return nil, err
	}
	return &order, nil
}
