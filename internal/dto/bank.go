package dto

type BankRequest struct {
	Nome         string  `json:"nome"`
	Tipo         string  `json:"tipo"`
	SaldoInicial float64 `json:"saldo_inicial"`
	Cor          string  `json:"cor"`
	Observacoes  *string `json:"observacoes"`
}

type BankResponse struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	Tipo         string  `json:"tipo"`
	SaldoInicial float64 `json:"saldo_inicial"`
	SaldoAtual   float64 `json:"saldo_atual"`
	Cor          string  `json:"cor"`
	Observacoes  *string `json:"observacoes"`
	CreatedAt    string  `json:"created_at"`
}

type CardRequest struct {
	Nome          string   `json:"nome"`
	Tipo          string   `json:"tipo"`
	Limite        *float64 `json:"limite"`
	DiaFechamento *int     `json:"dia_fechamento"`
	DiaVencimento *int     `json:"dia_vencimento"`
	Cor           string   `json:"cor"`
	Ativo         *bool    `json:"ativo"`
}

type CardResponse struct {
	ID            string   `json:"id"`
	BancoID       string   `json:"banco_id"`
	Nome          string   `json:"nome"`
	Tipo          string   `json:"tipo"`
	Limite        *float64 `json:"limite"`
	DiaFechamento *int     `json:"dia_fechamento"`
	DiaVencimento *int     `json:"dia_vencimento"`
	Cor           string   `json:"cor"`
	Ativo         bool     `json:"ativo"`
	CreatedAt     string   `json:"created_at"`
}
