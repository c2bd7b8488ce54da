package dto

type TransactionRequest struct {
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	Tipo        string  `json:"tipo"`
	Data        string  `json:"data"` // YYYY-MM-DD
	CategoriaID *string `json:"categoria_id"`
	BancoID     *string `json:"banco_id"`
	CartaoID    *string `json:"cartao_id"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	Tipo          string  `json:"tipo"`
	Descricao     string  `json:"descricao"`
	Valor         float64 `json:"valor"`
	Data          string  `json:"data"`
	CategoriaID   *string `json:"categoria_id"`
	BancoID       *string `json:"banco_id"`
	CartaoID      *string `json:"cartao_id"`
	CategoriaNome *string `json:"categoria_nome"`
	CategoriaCor  *string `json:"categoria_cor"`
	BancoNome     *string `json:"banco_nome"`
	BancoCor      *string `json:"banco_cor"`
	CartaoNome    *string `json:"cartao_nome"`
	CartaoCor     *string `json:"cartao_cor"`
	CreatedAt     string  `json:"created_at"`
}

// ResumoResponse carries the period totals, each rounded to two decimals.
type ResumoResponse struct {
	Receitas float64 `json:"receitas"`
	Despesas float64 `json:"despesas"`
	Saldo    float64 `json:"saldo"`
}

type ProjecaoResponse struct {
	DespesasAtuais   float64 `json:"despesas_atuais"`
	ProjecaoDespesas float64 `json:"projecao_despesas"`
	SaldoProjetado   float64 `json:"saldo_projetado"`
}
