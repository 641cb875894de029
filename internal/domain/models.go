package domain

import "time"

type User struct {
	ID    string `db:"id"`
	Nom   string `db:"nom"`
	Email string `db:"email"`
	Role  string `db:"role"`
	Solde int64  `db:"solde"`
}

type Article struct {
	ID          string `db:"id"`
	Nom         string `db:"nom"`
	Prix        int64  `db:"prix"`
	PrixPromo   *int64 `db:"prix_promo"`
	IsPromotion bool   `db:"is_promotion"`
	BoutiqueID  string `db:"boutique_id"`
}

type Variation struct {
	ID        string  `db:"id"`
	ArticleID string  `db:"article_id"`
	Couleur   *string `db:"couleur"`
	Taille    *string `db:"taille"`
	Stock     int     `db:"stock"`
	Prix      int64   `db:"prix"`
}

type Order struct {
	ID               string      `db:"id"               json:"id"`
	Numero           string      `db:"numero"           json:"numero"`
	ClientID         string      `db:"client_id"        json:"client_id"`
	IsLivrable       bool        `db:"is_livrable"      json:"isLivrable"`
	Commentaire      string      `db:"commentaire"      json:"commentaire"`
	AdresseLivraison string      `db:"adresse_livraison" json:"adresse_livraison"`
	PrixTotal        int64       `db:"prix_total"       json:"prix_total"`
	FraisLivraison   int64       `db:"frais_livraison"  json:"frais_livraison"`
	Status           string      `db:"status"           json:"status"`
	CreatedAt        time.Time   `db:"created_at"       json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"       json:"updated_at"`
	Lines            []OrderLine `db:"-"                json:"commande_articles"`
}

type OrderLine struct {
	ID           string  `db:"id"            json:"id"`
	CommandeID   string  `db:"commande_id"   json:"commande_id"`
	ArticleID    string  `db:"article_id"    json:"article_id"`
	VariationID  *string `db:"variation_id"  json:"variation_id,omitempty"`
	Quantite     int     `db:"quantite"      json:"quantite"`
	PrixUnitaire int64   `db:"prix_unitaire" json:"prix_unitaire"`
	Frais        int64   `db:"frais"         json:"frais"`
}

type Favorite struct {
	UserID    string    `db:"user_id"    json:"user_id"`
	ArticleID string    `db:"article_id" json:"article_id"`
	Nom       string    `db:"nom"        json:"nom"`
	Prix      int64     `db:"prix"       json:"prix"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type OutboxEvent struct {
	ID        int64      `db:"id"`
	Topic     string     `db:"topic"`
	Key       string     `db:"event_key"`
	Payload   []byte     `db:"payload"`
	CreatedAt time.Time  `db:"created_at"`
	SentAt    *time.Time `db:"sent_at"`
}
