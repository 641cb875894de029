package balanceservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/boutique/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

var (
	ErrAccountNotFound = errors.New("account not found")
)

// GetSolde returns the account together with its accumulated balance.
func (s *Service) GetSolde(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}
	return user, nil
}
