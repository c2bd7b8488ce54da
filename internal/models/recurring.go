package models

import (
	"time"

	"github.com/google/uuid"
)

// RecurringExpense is a fixed monthly expense that can be materialized into
// a transaction on its due day.
type RecurringExpense struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	CategoriaID   *uuid.UUID `db:"categoria_id"`
	BancoID       *uuid.UUID `db:"banco_id"`
	CartaoID      *uuid.UUID `db:"cartao_id"`
	Descricao     string     `db:"descricao"`
	Valor         float64    `db:"valor"`
	DiaVencimento int        `db:"dia_vencimento"`
	Tipo          string     `db:"tipo"`
	Ativo         bool       `db:"ativo"`
	Observacoes   *string    `db:"observacoes"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`

	CategoriaNome *string
	CategoriaCor  *string
	BancoNome     *string
	BancoCor      *string
	CartaoNome    *string
	CartaoCor     *string
}
