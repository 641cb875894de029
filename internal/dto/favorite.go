package dto

type ToggleFavoriteRequestDTO struct {
	ArticleID string `json:"article_id" validate:"required,uuid"`
}

type FavoriteStatusResponseDTO struct {
	ArticleID string `json:"article_id"`
	Favorited bool   `json:"favorited"`
}
