package orderservice

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

type stockDecrement struct {
	variationID string
	qty         int
}

type credit struct {
	userID string
	amount int64
}

// settlement lists the writes that follow a saved order header.
type settlement struct {
	decrements []stockDecrement
	credits    []credit
}

// newSettlement orders seller credits by seller id and appends the platform
// fee credit last, so concurrent checkouts lock balance rows in the same order.
func newSettlement(asm *assembly, platformAccountID string) settlement {
	var st settlement
	for _, line := range asm.lines {
		if line.VariationID != nil {
			st.decrements = append(st.decrements, stockDecrement{variationID: *line.VariationID, qty: line.Quantite})
		}
	}
	sort.SliceStable(st.decrements, func(i, j int) bool {
		return st.decrements[i].variationID < st.decrements[j].variationID
	})

	sellers := make([]string, 0, len(asm.sellerMargins))
	for id := range asm.sellerMargins {
		sellers = append(sellers, id)
	}
	sort.Strings(sellers)
	for _, id := range sellers {
		st.credits = append(st.credits, credit{userID: id, amount: asm.sellerMargins[id]})
	}
	if asm.platformFee > 0 {
		st.credits = append(st.credits, credit{userID: platformAccountID, amount: asm.platformFee})
	}
	return st
}

func (s *Service) settle(ctx context.Context, st settlement) error {
	for _, d := range st.decrements {
		ok, err := s.articles.DecrementStock(ctx, d.variationID, d.qty)
		if err != nil {
			return fmt.Errorf("%w: decrement stock of %s: %w", ErrPersistence, d.variationID, err)
		}
		if !ok {
			zap.L().Info("stock changed during checkout", zap.String("variation_id", d.variationID))
			return fmt.Errorf("%w: variation %s", ErrInsufficientStock, d.variationID)
		}
	}
	for _, c := range st.credits {
		if err := s.users.IncrementSolde(ctx, c.userID, c.amount); err != nil {
			return fmt.Errorf("%w: credit %s: %w", ErrPersistence, c.userID, err)
		}
	}
	return nil
}
