package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `db:"id"`
	Nome            string    `db:"nome"`
	Email           string    `db:"email"`
	Senha           string    `db:"senha"`
	GanhoFixoMensal float64   `db:"ganho_fixo_mensal"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
