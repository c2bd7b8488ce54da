package models

import (
	"time"

	"github.com/google/uuid"
)

type BankType string

const (
	BankTypeBanco     BankType = "banco"
	BankTypeCarteira  BankType = "carteira"
	BankTypeCorretora BankType = "corretora"
)

type Bank struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Nome         string    `db:"nome"`
	Tipo         BankType  `db:"tipo"`
	SaldoInicial float64   `db:"saldo_inicial"`
	SaldoAtual   float64   `db:"saldo_atual"`
	Cor          string    `db:"cor"`
	Observacoes  *string   `db:"observacoes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
