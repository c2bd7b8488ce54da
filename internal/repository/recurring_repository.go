package repository

import (
	"context"

	"grana/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RecurringRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecurringRepository(db *pgxpool.Pool, logger *zap.Logger) *RecurringRepository {
	return &RecurringRepository{
		db:     db,
		logger: logger,
	}
}

var recurringColumns = []string{
	"g.id", "g.user_id", "g.categoria_id", "g.banco_id", "g.cartao_id",
	"g.descricao", "g.valor", "g.dia_vencimento", "g.tipo", "g.ativo", "g.observacoes",
	"g.created_at", "g.updated_at",
	"c.nome", "c.cor", "b.nome", "b.cor", "ca.nome", "ca.cor",
}

func recurringSelect() squirrel.SelectBuilder {
	return squirrel.Select(recurringColumns...).
		From("gastos_recorrentes g").
		LeftJoin("categorias c ON c.id = g.categoria_id").
		LeftJoin("bancos b ON b.id = g.banco_id").
		LeftJoin("cartoes ca ON ca.id = g.cartao_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanRecurring(row pgx.Row) (*models.RecurringExpense, error) {
	var g models.RecurringExpense
	err := row.Scan(
		&g.ID, &g.UserID, &g.CategoriaID, &g.BancoID, &g.CartaoID,
		&g.Descricao, &g.Valor, &g.DiaVencimento, &g.Tipo, &g.Ativo, &g.Observacoes,
		&g.CreatedAt, &g.UpdatedAt,
		&g.CategoriaNome, &g.CategoriaCor, &g.BancoNome, &g.BancoCor, &g.CartaoNome, &g.CartaoCor,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *RecurringRepository) Create(ctx context.Context, g *models.RecurringExpense) error {
	query := squirrel.Insert("gastos_recorrentes").
		Columns("id", "user_id", "categoria_id", "banco_id", "cartao_id", "descricao", "valor", "dia_vencimento", "tipo", "ativo", "observacoes", "created_at", "updated_at").
		Values(g.ID, g.UserID, g.CategoriaID, g.BancoID, g.CartaoID, g.Descricao, g.Valor, g.DiaVencimento, g.Tipo, g.Ativo, g.Observacoes, g.CreatedAt, g.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *RecurringRepository) ListByUser(ctx context.Context, userID uuid.UUID, ativo *bool) ([]*models.RecurringExpense, error) {
	query := recurringSelect().
		Where(squirrel.Eq{"g.user_id": userID}).
		OrderBy("g.dia_vencimento ASC")

	if ativo != nil {
		query = query.Where(squirrel.Eq{"g.ativo": *ativo})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.RecurringExpense
	for rows.Next() {
		g, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, g)
	}

	return expenses, rows.Err()
}

func (r *RecurringRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.RecurringExpense, error) {
	query := recurringSelect().
		Where(squirrel.Eq{"g.id": id, "g.user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanRecurring(r.db.QueryRow(ctx, sql, args...))
}

func (r *RecurringRepository) Update(ctx context.Context, g *models.RecurringExpense) error {
	query := squirrel.Update("gastos_recorrentes").
		Set("descricao", g.Descricao).
		Set("valor", g.Valor).
		Set("dia_vencimento", g.DiaVencimento).
		Set("tipo", g.Tipo).
		Set("categoria_id", g.CategoriaID).
		Set("banco_id", g.BancoID).
		Set("cartao_id", g.CartaoID).
		Set("ativo", g.Ativo).
		Set("observacoes", g.Observacoes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": g.ID, "user_id": g.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *RecurringRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("gastos_recorrentes").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
