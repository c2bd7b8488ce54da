package dto

type RecurringExpenseRequest struct {
	Descricao     string  `json:"descricao"`
	Valor         float64 `json:"valor"`
	DiaVencimento int     `json:"dia_vencimento"`
	Tipo          string  `json:"tipo"`
	CategoriaID   *string `json:"categoria_id"`
	BancoID       *string `json:"banco_id"`
	CartaoID      *string `json:"cartao_id"`
	Ativo         *bool   `json:"ativo"`
	Observacoes   *string `json:"observacoes"`
}

type RecurringExpenseResponse struct {
	ID            string  `json:"id"`
	Descricao     string  `json:"descricao"`
	Valor         float64 `json:"valor"`
	DiaVencimento int     `json:"dia_vencimento"`
	Tipo          string  `json:"tipo"`
	CategoriaID   *string `json:"categoria_id"`
	BancoID       *string `json:"banco_id"`
	CartaoID      *string `json:"cartao_id"`
	Ativo         bool    `json:"ativo"`
	Observacoes   *string `json:"observacoes"`
	CategoriaNome *string `json:"categoria_nome"`
	CategoriaCor  *string `json:"categoria_cor"`
	BancoNome     *string `json:"banco_nome"`
	BancoCor      *string `json:"banco_cor"`
	CartaoNome    *string `json:"cartao_nome"`
	CartaoCor     *string `json:"cartao_cor"`
	CreatedAt     string  `json:"created_at"`
}
