package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes income from expense entries.
type TransactionType string

const (
	TypeReceita TransactionType = "receita"
	TypeDespesa TransactionType = "despesa"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TypeReceita || t == TypeDespesa
}

type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	CategoriaID *uuid.UUID      `db:"categoria_id"`
	BancoID     *uuid.UUID      `db:"banco_id"`
	CartaoID    *uuid.UUID      `db:"cartao_id"`
	Tipo        TransactionType `db:"tipo"`
	Descricao   string          `db:"descricao"`
	Valor       float64         `db:"valor"`
	Data        time.Time       `db:"data"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	// Joined display fields, populated by list/get queries.
	CategoriaNome *string
	CategoriaCor  *string
	BancoNome     *string
	BancoCor      *string
	CartaoNome    *string
	CartaoCor     *string
}
