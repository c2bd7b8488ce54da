package models

import (
	"time"

	"github.com/google/uuid"
)

type GoalStatus string

const (
	GoalStatusAtiva     GoalStatus = "ativa"
	GoalStatusPausada   GoalStatus = "pausada"
	GoalStatusConcluida GoalStatus = "concluida"
)

// Goal is a savings target tracked against an accumulated amount.
type Goal struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	CategoriaID *uuid.UUID `db:"categoria_id"`
	Titulo      string     `db:"titulo"`
	Descricao   *string    `db:"descricao"`
	ValorMeta   float64    `db:"valor_meta"`
	ValorAtual  float64    `db:"valor_atual"`
	DataInicio  *time.Time `db:"data_inicio"`
	DataFim     *time.Time `db:"data_fim"`
	Status      GoalStatus `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`

	CategoriaNome *string
	CategoriaCor  *string
}

// Progresso returns completion as a percentage; 0 when there is no target.
func (g *Goal) Progresso() float64 {
	if g.ValorMeta <= 0 {
		return 0
	}
	return g.ValorAtual / g.ValorMeta * 100
}
