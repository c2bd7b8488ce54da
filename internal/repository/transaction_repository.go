package repository

import (
	"context"
	"time"

	"grana/internal/models"
	"grana/internal/summary"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TransactionFilter narrows listing queries. Zero values mean no filter.
type TransactionFilter struct {
	Start time.Time
	End   time.Time
	Tipo  models.TransactionType
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

var transactionColumns = []string{
	"t.id", "t.user_id", "t.categoria_id", "t.banco_id", "t.cartao_id",
	"t.tipo", "t.descricao", "t.valor", "t.data", "t.created_at", "t.updated_at",
	"c.nome", "c.cor", "b.nome", "b.cor", "ca.nome", "ca.cor",
}

func transactionSelect() squirrel.SelectBuilder {
	return squirrel.Select(transactionColumns...).
		From("transacoes t").
		LeftJoin("categorias c ON c.id = t.categoria_id").
		LeftJoin("bancos b ON b.id = t.banco_id").
		LeftJoin("cartoes ca ON ca.id = t.cartao_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.CategoriaID, &tx.BancoID, &tx.CartaoID,
		&tx.Tipo, &tx.Descricao, &tx.Valor, &tx.Data, &tx.CreatedAt, &tx.UpdatedAt,
		&tx.CategoriaNome, &tx.CategoriaCor, &tx.BancoNome, &tx.BancoCor, &tx.CartaoNome, &tx.CartaoCor,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transacoes").
		Columns("id", "user_id", "categoria_id", "banco_id", "cartao_id", "tipo", "descricao", "valor", "data", "created_at", "updated_at").
		Values(tx.ID, tx.UserID, tx.CategoriaID, tx.BancoID, tx.CartaoID, tx.Tipo, tx.Descricao, tx.Valor, tx.Data, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	query := transactionSelect().
		Where(squirrel.Eq{"t.id": id, "t.user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanTransaction(r.db.QueryRow(ctx, sql, args...))
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*models.Transaction, error) {
	query := transactionSelect().
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.data DESC", "t.created_at DESC")

	if !filter.Start.IsZero() && !filter.End.IsZero() {
		query = query.Where(squirrel.GtOrEq{"t.data": filter.Start}).
			Where(squirrel.LtOrEq{"t.data": filter.End})
	}
	if filter.Tipo != "" {
		query = query.Where(squirrel.Eq{"t.tipo": filter.Tipo})
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

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// ListLedger returns the lean (tipo, valor, data) projection the period
// aggregator consumes. Valor comes back as text: the aggregator owns the
// defensive numeric coercion at this boundary.
func (r *TransactionRepository) ListLedger(ctx context.Context, userID uuid.UUID) ([]summary.Record, error) {
	query := squirrel.Select("tipo", "valor::text", "data").
		From("transacoes").
		Where(squirrel.Eq{"user_id": userID}).
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

	var records []summary.Record
	for rows.Next() {
		var rec summary.Record
		if err := rows.Scan(&rec.Tipo, &rec.Valor, &rec.Data); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transacoes").
		Set("descricao", tx.Descricao).
		Set("valor", tx.Valor).
		Set("tipo", tx.Tipo).
		Set("data", tx.Data).
		Set("categoria_id", tx.CategoriaID).
		Set("banco_id", tx.BancoID).
		Set("cartao_id", tx.CartaoID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("transacoes").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
