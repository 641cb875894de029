package dto

type SoldeResponseDTO struct {
	UserID string `json:"user_id"`
	Solde  int64  `json:"solde"`
}
