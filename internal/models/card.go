package models

import (
	"time"

	"github.com/google/uuid"
)

type CardType string

const (
	CardTypeCredito CardType = "credito"
	CardTypeDebito  CardType = "debito"
)

type Card struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	BancoID       uuid.UUID `db:"banco_id"`
	Nome          string    `db:"nome"`
	Tipo          CardType  `db:"tipo"`
	Limite        *float64  `db:"limite"`
	DiaFechamento *int      `db:"dia_fechamento"`
	DiaVencimento *int      `db:"dia_vencimento"`
	Cor           string    `db:"cor"`
	Ativo         bool      `db:"ativo"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
