package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/GlebRadaev/boutique/internal/metrics"
	"github.com/GlebRadaev/boutique/internal/outbox"
	"github.com/GlebRadaev/boutique/internal/pg"
	"github.com/GlebRadaev/boutique/internal/pricing"
	"github.com/GlebRadaev/boutique/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type OrderRepo interface {
	CountSince(ctx context.Context, since time.Time) (int, error)
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByClientID(ctx context.Context, clientID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

type ArticleRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindVariation(ctx context.Context, id string) (*domain.Variation, error)
	ListVariations(ctx context.Context, articleID string) ([]domain.Variation, error)
	DecrementStock(ctx context.Context, variationID string, qty int) (bool, error)
}

type UserRepo interface {
	FindAdmin(ctx context.Context) (*domain.User, error)
	IncrementSolde(ctx context.Context, userID string, amount int64) error
}

type OutboxRepo interface {
	Enqueue(ctx context.Context, topic, key string, payload []byte) error
}

const (
	// StatusPending order placed, waiting for confirmation;
	StatusPending string = "en_attente"
	// StatusConfirmed order accepted by the sellers;
	StatusConfirmed string = "confirmee"
	// StatusShipped order handed over for delivery;
	StatusShipped string = "expediee"
	// StatusDelivered order received by the client;
	StatusDelivered string = "livree"
	// StatusCanceled order canceled.
	StatusCanceled string = "annulee"
)

var statuses = map[string]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusShipped:   {},
	StatusDelivered: {},
	StatusCanceled:  {},
}

func IsValidStatus(status string) bool {
	_, ok := statuses[status]
	return ok
}

var (
	ErrValidation        = errors.New("validation error")
	ErrArticleNotFound   = errors.New("article not found")
	ErrVariationNotFound = errors.New("variation not found")
	ErrInsufficientStock = pricing.ErrInsufficientStock
	ErrNoPlatformAccount = errors.New("no platform admin account configured")
	ErrPersistence       = errors.New("persistence failure")
	ErrOrderNotFound     = errors.New("order not found")
	ErrForbidden         = errors.New("forbidden")
)

type LineInput struct {
	ArticleID   string
	VariationID *string
	Quantite    int
}

type CreateInput struct {
	ClientID         string
	IsLivrable       bool
	Commentaire      string
	AdresseLivraison string
	Items            []LineInput
}

type Service struct {
	orders    OrderRepo
	articles  ArticleRepo
	users     UserRepo
	outbox    OutboxRepo
	txManager pg.TXManager
	numbers   *NumberGenerator
}

func New(orders OrderRepo, articles ArticleRepo, users UserRepo, outboxRepo OutboxRepo, txManager pg.TXManager) *Service {
	return &Service{
		orders:    orders,
		articles:  articles,
		users:     users,
		outbox:    outboxRepo,
		txManager: txManager,
		numbers:   NewNumberGenerator(orders, time.Now),
	}
}

// assembly is the priced breakdown of a checkout before anything is written.
type assembly struct {
	lines         []domain.OrderLine
	subtotal      int64
	platformFee   int64
	sellerMargins map[string]int64
}

// CreateOrder validates and prices the requested lines, then writes the order,
// its lines, the stock decrements, the balance credits and the outbox event in
// one transaction. Business errors are returned before any write.
func (s *Service) CreateOrder(ctx context.Context, in CreateInput) (*domain.Order, error) {
	order, err := s.createOrder(ctx, in)
	if err != nil {
		metrics.OrdersCreated.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}
	metrics.OrdersCreated.WithLabelValues("ok").Inc()
	metrics.OrderTotal.Observe(float64(order.PrixTotal))
	return order, nil
}

func (s *Service) createOrder(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one article is required", ErrValidation)
	}

	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: find platform account: %w", ErrPersistence, err)
	}
	if admin == nil {
		zap.L().Error("checkout refused, platform account is missing")
		return nil, ErrNoPlatformAccount
	}

	asm, err := s.assemble(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	delivery := pricing.DeliveryFee(in.AdresseLivraison, len(asm.sellerMargins))
	order := &domain.Order{
		Numero:           s.numbers.Next(ctx),
		ClientID:         in.ClientID,
		IsLivrable:       in.IsLivrable,
		Commentaire:      in.Commentaire,
		AdresseLivraison: in.AdresseLivraison,
		PrixTotal:        asm.subtotal + delivery,
		FraisLivraison:   delivery,
		Status:           StatusPending,
		Lines:            asm.lines,
	}

	st := newSettlement(asm, admin.ID)

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.orders.Save(ctx, order); err != nil {
			return fmt.Errorf("%w: save order: %w", ErrPersistence, err)
		}
		if err := s.settle(ctx, st); err != nil {
			return err
		}
		return s.emit(ctx, outbox.TopicOrderCreated, order.ID, outbox.OrderCreatedPayload{
			OrderID:        order.ID,
			Numero:         order.Numero,
			ClientID:       order.ClientID,
			PrixTotal:      order.PrixTotal,
			FraisLivraison: order.FraisLivraison,
			Lines:          len(order.Lines),
		})
	})
	if err != nil {
		zap.L().Error("order creation rolled back", zap.String("numero", order.Numero), zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created",
		zap.String("order_id", order.ID),
		zap.String("numero", order.Numero),
		zap.Int64("prix_total", order.PrixTotal),
		zap.Int64("frais_livraison", delivery),
		zap.Int64("platform_fee", asm.platformFee),
	)
	return order, nil
}

func (s *Service) assemble(ctx context.Context, items []LineInput) (*assembly, error) {
	asm := &assembly{
		lines:         make([]domain.OrderLine, 0, len(items)),
		sellerMargins: make(map[string]int64),
	}

	for i, item := range items {
		if item.Quantite < 1 {
			return nil, fmt.Errorf("%w: articles[%d].quantite must be at least 1", ErrValidation, i)
		}

		article, err := s.articles.FindByID(ctx, item.ArticleID)
		if err != nil {
			return nil, fmt.Errorf("%w: load article %s: %w", ErrPersistence, item.ArticleID, err)
		}
		if article == nil {
			return nil, fmt.Errorf("%w: %s", ErrArticleNotFound, item.ArticleID)
		}

		variation, err := s.lineVariation(ctx, *article, item)
		if err != nil {
			return nil, err
		}

		unitPrice, err := pricing.ResolveUnitPrice(*article, variation, item.Quantite)
		if err != nil {
			return nil, fmt.Errorf("%w: article %s requested %d", err, article.ID, item.Quantite)
		}

		fee, margin := pricing.ComputeFee(unitPrice, item.Quantite)
		asm.subtotal += unitPrice * int64(item.Quantite)
		asm.platformFee += fee
		asm.sellerMargins[article.BoutiqueID] += margin

		asm.lines = append(asm.lines, domain.OrderLine{
			ArticleID:    article.ID,
			VariationID:  item.VariationID,
			Quantite:     item.Quantite,
			PrixUnitaire: unitPrice,
			Frais:        fee,
		})
	}
	return asm, nil
}

// lineVariation loads the variation a line refers to. Lines without a variation
// are checked against the summed stock of the article's variations; an article
// with no variations has untracked stock.
func (s *Service) lineVariation(ctx context.Context, article domain.Article, item LineInput) (*domain.Variation, error) {
	if item.VariationID == nil {
		variations, err := s.articles.ListVariations(ctx, article.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: list variations of %s: %w", ErrPersistence, article.ID, err)
		}
		if len(variations) == 0 {
			return nil, nil
		}
		total := 0
		for _, v := range variations {
			total += v.Stock
		}
		if total < item.Quantite {
			return nil, fmt.Errorf("%w: article %s has %d in stock, requested %d", ErrInsufficientStock, article.ID, total, item.Quantite)
		}
		return nil, nil
	}

	variation, err := s.articles.FindVariation(ctx, *item.VariationID)
	if err != nil {
		return nil, fmt.Errorf("%w: load variation %s: %w", ErrPersistence, *item.VariationID, err)
	}
	if variation == nil || variation.ArticleID != article.ID {
		return nil, fmt.Errorf("%w: %s", ErrVariationNotFound, *item.VariationID)
	}
	return variation, nil
}

func (s *Service) emit(ctx context.Context, topic, key string, payload any) error {
	data, err := outbox.NewEnvelope(topic, payload)
	if err != nil {
		return err
	}
	if err := s.outbox.Enqueue(ctx, topic, key, data); err != nil {
		return fmt.Errorf("%w: enqueue %s: %w", ErrPersistence, topic, err)
	}
	return nil
}

func (s *Service) ListOrders(ctx context.Context, clientID string) ([]domain.Order, error) {
	orders, err := s.orders.FindByClientID(ctx, clientID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// GetOrder returns the order when requester owns it or is the platform admin.
func (s *Service) GetOrder(ctx context.Context, requester auth.Identity, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	if order == nil || (order.ClientID != requester.UserID && !requester.IsAdmin()) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus moves an order to another lifecycle label. Admin only.
func (s *Service) UpdateStatus(ctx context.Context, requester auth.Identity, id, status string) (*domain.Order, error) {
	if !requester.IsAdmin() {
		return nil, ErrForbidden
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	var updated *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.UpdateStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("%w: update status: %w", ErrPersistence, err)
		}
		if order == nil {
			return ErrOrderNotFound
		}
		updated = order
		return s.emit(ctx, outbox.TopicOrderStatusChanged, order.ID, outbox.OrderStatusChangedPayload{
			OrderID: order.ID,
			Numero:  order.Numero,
			Status:  order.Status,
		})
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order status updated", zap.String("order_id", id), zap.String("status", status))
	return updated, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrArticleNotFound), errors.Is(err, ErrVariationNotFound):
		return "not_found"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrNoPlatformAccount):
		return "misconfigured"
	default:
		return "error"
	}
}
