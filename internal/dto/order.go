package dto

// OrderLineRequestDTO caps quantite well below the INTEGER column limit.
type OrderLineRequestDTO struct {
	ArticleID   string  `json:"article_id" validate:"required,uuid"`
	VariationID *string `json:"variation_id,omitempty" validate:"omitempty,uuid"`
	Quantite    int     `json:"quantite" validate:"min=1,max=100000"`
}

// CreateOrderRequestDTO uses pointers where an absent field must be told apart
// from its zero value.
type CreateOrderRequestDTO struct {
	Commentaire      string                `json:"commentaire"`
	IsLivrable       *bool                 `json:"isLivrable" validate:"required"`
	AdresseLivraison *string               `json:"adresse_livraison" validate:"required,max=255"`
	Articles         []OrderLineRequestDTO `json:"articles" validate:"required,min=1,dive"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=en_attente confirmee expediee livree annulee"`
}
