package repository

import (
	"context"

	"grana/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CardRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCardRepository(db *pgxpool.Pool, logger *zap.Logger) *CardRepository {
	return &CardRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	query := squirrel.Insert("cartoes").
		Columns("id", "user_id", "banco_id", "nome", "tipo", "limite", "dia_fechamento", "dia_vencimento", "cor", "ativo", "created_at", "updated_at").
		Values(card.ID, card.UserID, card.BancoID, card.Nome, card.Tipo, card.Limite, card.DiaFechamento, card.DiaVencimento, card.Cor, card.Ativo, card.CreatedAt, card.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CardRepository) ListByBank(ctx context.Context, bancoID, userID uuid.UUID) ([]*models.Card, error) {
	query := squirrel.Select("id", "user_id", "banco_id", "nome", "tipo", "limite", "dia_fechamento", "dia_vencimento", "cor", "ativo", "created_at", "updated_at").
		From("cartoes").
		Where(squirrel.Eq{"banco_id": bancoID, "user_id": userID}).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(
			&card.ID, &card.UserID, &card.BancoID, &card.Nome, &card.Tipo, &card.Limite,
			&card.DiaFechamento, &card.DiaVencimento, &card.Cor, &card.Ativo, &card.CreatedAt, &card.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}

func (r *CardRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Card, error) {
	query := squirrel.Select("id", "user_id", "banco_id", "nome", "tipo", "limite", "dia_fechamento", "dia_vencimento", "cor", "ativo", "created_at", "updated_at").
		From("cartoes").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var card models.Card
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&card.ID, &card.UserID, &card.BancoID, &card.Nome, &card.Tipo, &card.Limite,
		&card.DiaFechamento, &card.DiaVencimento, &card.Cor, &card.Ativo, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (r *CardRepository) Update(ctx context.Context, card *models.Card) error {
	query := squirrel.Update("cartoes").
		Set("nome", card.Nome).
		Set("tipo", card.Tipo).
		Set("limite", card.Limite).
		Set("dia_fechamento", card.DiaFechamento).
		Set("dia_vencimento", card.DiaVencimento).
		Set("cor", card.Cor).
		Set("ativo", card.Ativo).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": card.ID, "banco_id": card.BancoID, "user_id": card.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CardRepository) Delete(ctx context.Context, id, bancoID, userID uuid.UUID) error {
	query := squirrel.Delete("cartoes").
		Where(squirrel.Eq{"id": id, "banco_id": bancoID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
