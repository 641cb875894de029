// Package pricing holds the per-line price, service fee and delivery fee rules
// applied at checkout. Amounts are whole francs.
package pricing

import (
	"errors"
	"strings"

	"github.com/GlebRadaev/boutique/internal/domain"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// ResolveUnitPrice returns the unit price to charge for qty units of article.
// variation is nil when the line does not reference one. The promotional price
// always wins, even over a variation override.
func ResolveUnitPrice(article domain.Article, variation *domain.Variation, qty int) (int64, error) {
	if variation != nil && variation.Stock < qty {
		return 0, ErrInsufficientStock
	}
	if article.IsPromotion && article.PrixPromo != nil {
		return *article.PrixPromo, nil
	}
	if variation != nil && variation.Prix != 0 {
		return variation.Prix, nil
	}
	return article.Prix, nil
}

const (
	lowTierLimit  int64 = 15000
	highTierLimit int64 = 50000

	lowTierFee  int64 = 300
	midTierFee  int64 = 500
	highTierFee int64 = 1000
)

// FeePerUnit is the platform service fee charged on one unit sold at unitPrice.
func FeePerUnit(unitPrice int64) int64 {
	switch {
	case unitPrice < lowTierLimit:
		return lowTierFee
	case unitPrice < highTierLimit:
		return midTierFee
	default:
		return highTierFee
	}
}

// ComputeFee returns the platform fee for the whole line and the margin left to the seller.
func ComputeFee(unitPrice int64, qty int) (fee, margin int64) {
	subtotal := unitPrice * int64(qty)
	fee = FeePerUnit(unitPrice) * int64(qty)
	return fee, subtotal - fee
}

type locality struct {
	name string
	fee  int64
}

// Matched in order; first hit wins.
var localities = []locality{
	{name: "libreville", fee: 2500},
	{name: "akanda", fee: 3000},
	{name: "owendo", fee: 3000},
	{name: "ntoum", fee: 4000},
}

const (
	DefaultDeliveryFee int64 = 5000
	MaxDeliveryFee     int64 = 10000
)

// DeliveryFee picks the base fee by literal, case-insensitive substring match of
// the address, multiplies it by the number of distinct sellers and caps the result.
func DeliveryFee(address string, sellers int) int64 {
	if sellers < 1 {
		sellers = 1
	}
	base := DefaultDeliveryFee
	addr := strings.ToLower(address)
	for _, l := range localities {
		if strings.Contains(addr, l.name) {
			base = l.fee
			break
		}
	}
	fee := base * int64(sellers)
	if fee > MaxDeliveryFee {
		return MaxDeliveryFee
	}
	return fee
}
