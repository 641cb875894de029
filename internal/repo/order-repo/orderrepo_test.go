package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func ptr[T any](v T) *T { return &v }

var headerColumns = []string{"id", "numero", "client_id", "is_livrable", "commentaire", "adresse_livraison",
	"prix_total", "frais_livraison", "status", "created_at", "updated_at"}

var lineColumns = []string{"id", "commande_id", "article_id", "variation_id", "quantite", "prix_unitaire", "frais"}

func TestRepository_CountSince(t *testing.T) {
	repo, mock, _ := NewMock(t)
	since := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM commandes WHERE created_at >= $1")).
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(41))

	n, err := repo.CountSince(context.Background(), since)
	assert.NoError(t, err)
	assert.Equal(t, 41, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
	}{
		{
			name: "Header and lines inserted",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO commandes")).
					WithArgs("CMD-26-00001", "client-1", true, "", "Libreville", int64(22500), int64(2500), "en_attente").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("order-1", now, now))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO commande_articles")).
					WithArgs("order-1", "art-1", ptr("var-1"), 2, int64(10000), int64(600)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("line-1"))
			},
		},
		{
			name: "Line insert failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO commandes")).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("order-1", now, now))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO commande_articles")).
					WillReturnError(errors.New("foreign key violation"))
			},
			expectErr: true,
		},
		{
			name: "Header insert failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO commandes")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, tx := NewMock(t)
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				return fn(ctx)
			})
			tt.mockSetup(mock)

			order := &domain.Order{
				Numero:           "CMD-26-00001",
				ClientID:         "client-1",
				IsLivrable:       true,
				AdresseLivraison: "Libreville",
				PrixTotal:        22500,
				FraisLivraison:   2500,
				Status:           "en_attente",
				Lines: []domain.OrderLine{
					{ArticleID: "art-1", VariationID: ptr("var-1"), Quantite: 2, PrixUnitaire: 10000, Frais: 600},
				},
			}
			err := repo.Save(context.Background(), order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "order-1", order.ID)
				assert.Equal(t, "order-1", order.Lines[0].CommandeID)
				assert.Equal(t, "line-1", order.Lines[0].ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Order with lines",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM commandes WHERE id = $1")).
					WithArgs("order-1").
					WillReturnRows(pgxmock.NewRows(headerColumns).
						AddRow("order-1", "CMD-26-00001", "client-1", true, "", "Libreville", int64(22500), int64(2500), "en_attente", now, now))
				mock.ExpectQuery(regexp.QuoteMeta("FROM commande_articles WHERE commande_id = ANY($1)")).
					WithArgs([]string{"order-1"}).
					WillReturnRows(pgxmock.NewRows(lineColumns).
						AddRow("line-1", "order-1", "art-1", ptr("var-1"), 2, int64(10000), int64(600)))
			},
			result: &domain.Order{
				ID: "order-1", Numero: "CMD-26-00001", ClientID: "client-1", IsLivrable: true,
				AdresseLivraison: "Libreville", PrixTotal: 22500, FraisLivraison: 2500, Status: "en_attente",
				CreatedAt: now, UpdatedAt: now,
				Lines: []domain.OrderLine{
					{ID: "line-1", CommandeID: "order-1", ArticleID: "art-1", VariationID: ptr("var-1"), Quantite: 2, PrixUnitaire: 10000, Frais: 600},
				},
			},
		},
		{
			name: "Order does not exist",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM commandes WHERE id = $1")).
					WithArgs("order-1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM commandes WHERE id = $1")).
					WithArgs("order-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByID(context.Background(), "order-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByClientID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM commandes WHERE client_id = $1 ORDER BY created_at DESC")).
		WithArgs("client-1").
		WillReturnRows(pgxmock.NewRows(headerColumns).
			AddRow("order-2", "CMD-26-00002", "client-1", false, "", "", int64(5300), int64(5000), "en_attente", now, now).
			AddRow("order-1", "CMD-26-00001", "client-1", true, "", "Libreville", int64(22500), int64(2500), "livree", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM commande_articles WHERE commande_id = ANY($1)")).
		WithArgs([]string{"order-2", "order-1"}).
		WillReturnRows(pgxmock.NewRows(lineColumns).
			AddRow("line-1", "order-1", "art-1", ptr("var-1"), 2, int64(10000), int64(600)).
			AddRow("line-2", "order-2", "art-2", ptr("var-9"), 1, int64(300), int64(300)))

	orders, err := repo.FindByClientID(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[0].ID)
	assert.Equal(t, "line-2", orders[0].Lines[0].ID)
	assert.Equal(t, "line-1", orders[1].Lines[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByClientIDEmpty(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM commandes WHERE client_id = $1")).
		WithArgs("client-1").
		WillReturnRows(pgxmock.NewRows(headerColumns))

	orders, err := repo.FindByClientID(context.Background(), "client-1")
	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		expectNil bool
	}{
		{
			name: "Status updated",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE commandes SET status = $2, updated_at = now() WHERE id = $1")).
					WithArgs("order-1", "livree").
					WillReturnRows(pgxmock.NewRows(headerColumns).
						AddRow("order-1", "CMD-26-00001", "client-1", true, "", "Libreville", int64(22500), int64(2500), "livree", now, now))
			},
		},
		{
			name: "Unknown order",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE commandes")).
					WithArgs("order-1", "livree").
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE commandes")).
					WithArgs("order-1", "livree").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			order, err := repo.UpdateStatus(context.Background(), "order-1", "livree")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, order)
			} else {
				require.NotNil(t, order)
				assert.Equal(t, "livree", order.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
