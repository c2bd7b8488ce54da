package repository

import (
	"context"

	"grana/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	query := squirrel.Insert("categorias").
		Columns("id", "user_id", "nome", "tipo", "cor", "created_at", "updated_at").
		Values(cat.ID, cat.UserID, cat.Nome, cat.Tipo, cat.Cor, cat.CreatedAt, cat.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) CreateBatch(ctx context.Context, categories []*models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	builder := squirrel.Insert("categorias").
		Columns("id", "user_id", "nome", "tipo", "cor", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, cat := range categories {
		builder = builder.Values(cat.ID, cat.UserID, cat.Nome, cat.Tipo, cat.Cor, cat.CreatedAt, cat.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, tipo models.TransactionType) ([]*models.Category, error) {
	query := squirrel.Select("id", "user_id", "nome", "tipo", "cor", "created_at", "updated_at").
		From("categorias").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if tipo != "" {
		query = query.Where(squirrel.Eq{"tipo": tipo})
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

	var categories []*models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(
			&cat.ID, &cat.UserID, &cat.Nome, &cat.Tipo, &cat.Cor, &cat.CreatedAt, &cat.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Category, error) {
	query := squirrel.Select("id", "user_id", "nome", "tipo", "cor", "created_at", "updated_at").
		From("categorias").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var cat models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&cat.ID, &cat.UserID, &cat.Nome, &cat.Tipo, &cat.Cor, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

// ExistsByNomeTipo reports whether the user already has a category with the
// same name and type, excluding excludeID when non-nil (updates).
func (r *CategoryRepository) ExistsByNomeTipo(ctx context.Context, userID uuid.UUID, nome string, tipo models.TransactionType, excludeID *uuid.UUID) (bool, error) {
	query := squirrel.Select("COUNT(1)").
		From("categorias").
		Where(squirrel.Eq{"user_id": userID, "nome": nome, "tipo": tipo}).
		PlaceholderFormat(squirrel.Dollar)

	if excludeID != nil {
		query = query.Where(squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// FirstByTipo returns any one category of the given type, used as the
// default when a transaction is auto-created from a receipt.
func (r *CategoryRepository) FirstByTipo(ctx context.Context, userID uuid.UUID, tipo models.TransactionType) (*models.Category, error) {
	query := squirrel.Select("id", "user_id", "nome", "tipo", "cor", "created_at", "updated_at").
		From("categorias").
		Where(squirrel.Eq{"user_id": userID, "tipo": tipo}).
		OrderBy("nome ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var cat models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&cat.ID, &cat.UserID, &cat.Nome, &cat.Tipo, &cat.Cor, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

func (r *CategoryRepository) Update(ctx context.Context, cat *models.Category) error {
	query := squirrel.Update("categorias").
		Set("nome", cat.Nome).
		Set("tipo", cat.Tipo).
		Set("cor", cat.Cor).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cat.ID, "user_id": cat.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("categorias").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
