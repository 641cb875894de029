package service

import (
	"github.com/GlebRadaev/boutique/internal/handlers/balance"
	"github.com/GlebRadaev/boutique/internal/handlers/favorites"
	"github.com/GlebRadaev/boutique/internal/handlers/orders"
	"github.com/GlebRadaev/boutique/internal/repo"
	balanceservice "github.com/GlebRadaev/boutique/internal/service/balanceservice"
	favoriteservice "github.com/GlebRadaev/boutique/internal/service/favoriteservice"
	orderservice "github.com/GlebRadaev/boutique/internal/service/orderservice"
)

type Services struct {
	OrderService    orders.Service
	BalanceService  balance.Service
	FavoriteService favorites.Service
}

func New(repo *repo.Repositories) *Services {
	orderService := orderservice.New(repo.OrderRepo, repo.ArticleRepo, repo.UserRepo, repo.OutboxRepo, repo.TxManager)
	balanceService := balanceservice.New(repo.UserRepo)
	favoriteService := favoriteservice.New(repo.FavoriteRepo, repo.ArticleRepo)

	return &Services{
		OrderService:    orderService,
		BalanceService:  balanceService,
		FavoriteService: favoriteService,
	}
}
