package dto

type ProfileResponse struct {
	ID              string  `json:"id"`
	Nome            string  `json:"nome"`
	Email           string  `json:"email"`
	GanhoFixoMensal float64 `json:"ganho_fixo_mensal"`
	CreatedAt       string  `json:"created_at"`
}

type UpdateNameRequest struct {
	Nome string `json:"nome"`
}

type UpdateFixedIncomeRequest struct {
	GanhoFixoMensal float64 `json:"ganho_fixo_mensal"`
}
