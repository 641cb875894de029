package repo

import (
	"github.com/GlebRadaev/boutique/internal/outbox"
	"github.com/GlebRadaev/boutique/internal/pg"
	articlerepo "github.com/GlebRadaev/boutique/internal/repo/article-repo"
	favoriterepo "github.com/GlebRadaev/boutique/internal/repo/favorite-repo"
	orderrepo "github.com/GlebRadaev/boutique/internal/repo/order-repo"
	outboxrepo "github.com/GlebRadaev/boutique/internal/repo/outbox-repo"
	userrepo "github.com/GlebRadaev/boutique/internal/repo/user-repo"
	"github.com/GlebRadaev/boutique/internal/service/balanceservice"
	"github.com/GlebRadaev/boutique/internal/service/favoriteservice"
	"github.com/GlebRadaev/boutique/internal/service/orderservice"
)

type UserRepo interface {
	orderservice.UserRepo
	balanceservice.UserRepo
}

type ArticleRepo interface {
	orderservice.ArticleRepo
	favoriteservice.ArticleRepo
}

type OutboxRepo interface {
	orderservice.OutboxRepo
	outbox.Repo
}

type Repositories struct {
	UserRepo     UserRepo
	ArticleRepo  ArticleRepo
	OrderRepo    orderservice.OrderRepo
	FavoriteRepo favoriteservice.FavoriteRepo
	OutboxRepo   OutboxRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		ArticleRepo:  articlerepo.New(conn),
		OrderRepo:    orderrepo.New(conn, txManager),
		FavoriteRepo: favoriterepo.New(conn),
		OutboxRepo:   outboxrepo.New(conn),
		TxManager:    txManager,
	}
}
