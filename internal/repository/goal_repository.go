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

type GoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

var goalColumns = []string{
	"m.id", "m.user_id", "m.categoria_id", "m.titulo", "m.descricao",
	"m.valor_meta", "m.valor_atual", "m.data_inicio", "m.data_fim", "m.status",
	"m.created_at", "m.updated_at",
	"c.nome", "c.cor",
}

func goalSelect() squirrel.SelectBuilder {
	return squirrel.Select(goalColumns...).
		From("metas m").
		LeftJoin("categorias c ON c.id = m.categoria_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanGoal(row pgx.Row) (*models.Goal, error) {
	var g models.Goal
	err := row.Scan(
		&g.ID, &g.UserID, &g.CategoriaID, &g.Titulo, &g.Descricao,
		&g.ValorMeta, &g.ValorAtual, &g.DataInicio, &g.DataFim, &g.Status,
		&g.CreatedAt, &g.UpdatedAt,
		&g.CategoriaNome, &g.CategoriaCor,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalRepository) Create(ctx context.Context, g *models.Goal) error {
	query := squirrel.Insert("metas").
		Columns("id", "user_id", "categoria_id", "titulo", "descricao", "valor_meta", "valor_atual", "data_inicio", "data_fim", "status", "created_at", "updated_at").
		Values(g.ID, g.UserID, g.CategoriaID, g.Titulo, g.Descricao, g.ValorMeta, g.ValorAtual, g.DataInicio, g.DataFim, g.Status, g.CreatedAt, g.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID, status models.GoalStatus) ([]*models.Goal, error) {
	query := goalSelect().
		Where(squirrel.Eq{"m.user_id": userID}).
		OrderBy("m.created_at DESC")

	if status != "" {
		query = query.Where(squirrel.Eq{"m.status": status})
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

	var goals []*models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (r *GoalRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Goal, error) {
	query := goalSelect().
		Where(squirrel.Eq{"m.id": id, "m.user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanGoal(r.db.QueryRow(ctx, sql, args...))
}

func (r *GoalRepository) Update(ctx context.Context, g *models.Goal) error {
	query := squirrel.Update("metas").
		Set("titulo", g.Titulo).
		Set("descricao", g.Descricao).
		Set("valor_meta", g.ValorMeta).
		Set("valor_atual", g.ValorAtual).
		Set("data_inicio", g.DataInicio).
		Set("data_fim", g.DataFim).
		Set("categoria_id", g.CategoriaID).
		Set("status", g.Status).
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

// UpdateProgress sets the accumulated amount and status after a deposit.
func (r *GoalRepository) UpdateProgress(ctx context.Context, id, userID uuid.UUID, valorAtual float64, status models.GoalStatus) error {
	query := squirrel.Update("metas").
		Set("valor_atual", valorAtual).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("metas").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
