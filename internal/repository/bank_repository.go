package repository

import (
	"context"

	"grana/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BankRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBankRepository(db *pgxpool.Pool, logger *zap.Logger) *BankRepository {
	return &BankRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BankRepository) Create(ctx context.Context, bank *models.Bank) error {
	query := squirrel.Insert("bancos").
		Columns("id", "user_id", "nome", "tipo", "saldo_inicial", "saldo_atual", "cor", "observacoes", "created_at", "updated_at").
		Values(bank.ID, bank.UserID, bank.Nome, bank.Tipo, bank.SaldoInicial, bank.SaldoAtual, bank.Cor, bank.Observacoes, bank.CreatedAt, bank.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BankRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Bank, error) {
	query := squirrel.Select("id", "user_id", "nome", "tipo", "saldo_inicial", "saldo_atual", "cor", "observacoes", "created_at", "updated_at").
		From("bancos").
		Where(squirrel.Eq{"user_id": userID}).
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

	var banks []*models.Bank
	for rows.Next() {
		var bank models.Bank
		if err := rows.Scan(
			&bank.ID, &bank.UserID, &bank.Nome, &bank.Tipo, &bank.SaldoInicial, &bank.SaldoAtual,
			&bank.Cor, &bank.Observacoes, &bank.CreatedAt, &bank.UpdatedAt,
		); err != nil {
			return nil, err
		}
		banks = append(banks, &bank)
	}

	return banks, rows.Err()
}

func (r *BankRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Bank, error) {
	query := squirrel.Select("id", "user_id", "nome", "tipo", "saldo_inicial", "saldo_atual", "cor", "observacoes", "created_at", "updated_at").
		From("bancos").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var bank models.Bank
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&bank.ID, &bank.UserID, &bank.Nome, &bank.Tipo, &bank.SaldoInicial, &bank.SaldoAtual,
		&bank.Cor, &bank.Observacoes, &bank.CreatedAt, &bank.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &bank, nil
}

func (r *BankRepository) Update(ctx context.Context, bank *models.Bank) error {
	query := squirrel.Update("bancos").
		Set("nome", bank.Nome).
		Set("tipo", bank.Tipo).
		Set("saldo_inicial", bank.SaldoInicial).
		Set("saldo_atual", bank.SaldoAtual).
		Set("cor", bank.Cor).
		Set("observacoes", bank.Observacoes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bank.ID, "user_id": bank.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BankRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("bancos").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
