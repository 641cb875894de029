package pricing

import (
	"testing"

	"github.com/GlebRadaev/boutique/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestResolveUnitPrice(t *testing.T) {
	tests := []struct {
		name          string
		article       domain.Article
		variation     *domain.Variation
		qty           int
		expectedPrice int64
		expectedError error
	}{
		{
			name:          "Base price without variation",
			article:       domain.Article{Prix: 10000},
			qty:           2,
			expectedPrice: 10000,
		},
		{
			name:          "Promotion price without variation",
			article:       domain.Article{Prix: 10000, PrixPromo: ptr(int64(8000)), IsPromotion: true},
			qty:           1,
			expectedPrice: 8000,
		},
		{
			name:          "Promo price ignored when promotion is off",
			article:       domain.Article{Prix: 10000, PrixPromo: ptr(int64(8000))},
			qty:           1,
			expectedPrice: 10000,
		},
		{
			name:          "Variation override",
			article:       domain.Article{Prix: 10000},
			variation:     &domain.Variation{Stock: 5, Prix: 12000},
			qty:           3,
			expectedPrice: 12000,
		},
		{
			name:          "Zero variation override falls back to article price",
			article:       domain.Article{Prix: 10000},
			variation:     &domain.Variation{Stock: 5, Prix: 0},
			qty:           1,
			expectedPrice: 10000,
		},
		{
			name:          "Promotion wins over variation override",
			article:       domain.Article{Prix: 10000, PrixPromo: ptr(int64(7000)), IsPromotion: true},
			variation:     &domain.Variation{Stock: 5, Prix: 12000},
			qty:           1,
			expectedPrice: 7000,
		},
		{
			name:          "Exact stock is enough",
			article:       domain.Article{Prix: 10000},
			variation:     &domain.Variation{Stock: 3},
			qty:           3,
			expectedPrice: 10000,
		},
		{
			name:          "Insufficient variation stock",
			article:       domain.Article{Prix: 10000},
			variation:     &domain.Variation{Stock: 3},
			qty:           5,
			expectedError: ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := ResolveUnitPrice(tt.article, tt.variation, tt.qty)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPrice, price)
		})
	}
}

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name           string
		unitPrice      int64
		qty            int
		expectedFee    int64
		expectedMargin int64
	}{
		{name: "Below low tier", unitPrice: 14999, qty: 1, expectedFee: 300, expectedMargin: 14699},
		{name: "Low tier boundary", unitPrice: 15000, qty: 1, expectedFee: 500, expectedMargin: 14500},
		{name: "Top of middle tier", unitPrice: 49999, qty: 1, expectedFee: 500, expectedMargin: 49499},
		{name: "High tier boundary", unitPrice: 50000, qty: 1, expectedFee: 1000, expectedMargin: 49000},
		{name: "Fee multiplied by quantity", unitPrice: 10000, qty: 2, expectedFee: 600, expectedMargin: 19400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, margin := ComputeFee(tt.unitPrice, tt.qty)
			assert.Equal(t, tt.expectedFee, fee)
			assert.Equal(t, tt.expectedMargin, margin)
			assert.Equal(t, tt.unitPrice*int64(tt.qty), fee+margin)
		})
	}
}

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		sellers  int
		expected int64
	}{
		{name: "Known locality single seller", address: "Libreville", sellers: 1, expected: 2500},
		{name: "Case insensitive substring", address: "Quartier Louis, LIBREVILLE centre", sellers: 1, expected: 2500},
		{name: "Multiplied by sellers", address: "Akanda", sellers: 2, expected: 6000},
		{name: "Unknown locality uses default", address: "Franceville", sellers: 1, expected: DefaultDeliveryFee},
		{name: "Capped", address: "Franceville", sellers: 3, expected: MaxDeliveryFee},
		{name: "Zero sellers counts as one", address: "Ntoum", sellers: 0, expected: 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeliveryFee(tt.address, tt.sellers))
		})
	}
}

func TestDeliveryFeeNeverExceedsCap(t *testing.T) {
	for sellers := 1; sellers <= 50; sellers++ {
		for _, addr := range []string{"libreville", "owendo", "ntoum", "nowhere"} {
			assert.LessOrEqual(t, DeliveryFee(addr, sellers), MaxDeliveryFee)
		}
	}
}
