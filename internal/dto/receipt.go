package dto

import "grana/internal/receipt"

// CreatedTransaction summarizes the transaction auto-created from a receipt.
type CreatedTransaction struct {
	ID        string  `json:"id"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"`
}

type ProcessReceiptResponse struct {
	Success   bool                `json:"success"`
	Resultado *receipt.Result     `json:"resultado"`
	Transacao *CreatedTransaction `json:"transacao"`
	Mensagem  string              `json:"mensagem,omitempty"`
}
