package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"jakob/internal/domain"
	"jakob/internal/infra"
	"jakob/internal/sqlinline"
)

const pgForeignKeyViolation = "23503"

// TransactionRepositoryPG implements domain.TransactionRepository using PostgreSQL.
type TransactionRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewTransactionRepository creates a new transaction repo.
func NewTransactionRepository(sql infra.SQLExecutor) *TransactionRepositoryPG {
	return &TransactionRepositoryPG{sql: sql}
}

// Insert writes a pending transaction. The statement carries
// "on conflict (reference_externe) do nothing", so a retried donation with the
// same reference produces no row and is reported as InsertAlreadyExists
// instead of an error.
func (r *TransactionRepositoryPG) Insert(ctx context.Context, tx *domain.Transaction) (domain.InsertOutcome, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertTransaction,
		tx.UserID,
		tx.RecipientID,
		tx.Gross.StringFixed(2),
		tx.PlatformFee.StringFixed(2),
		string(tx.Canal),
		tx.ExternalRef,
		string(tx.Status),
		tx.Metadata,
	)
	if err := row.Scan(&tx.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.InsertAlreadyExists, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			// recipient vanished between the creator check and the insert
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return domain.InsertCreated, nil
}

// ListByRecipient returns the most recent donations received by a creator.
func (r *TransactionRepositoryPG) ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]domain.Transaction, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListTransactionsByRecipient, recipientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var gross, fee, canal, status string
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.RecipientID, &gross, &fee, &canal, &tx.ExternalRef, &status, &tx.Metadata, &tx.CreatedAt); err != nil {
			return nil, err
		}
		if tx.Gross, err = decimal.NewFromString(gross); err != nil {
			return nil, fmt.Errorf("parse montant_brut: %w", err)
		}
		if tx.PlatformFee, err = decimal.NewFromString(fee); err != nil {
			return nil, fmt.Errorf("parse platform_fee: %w", err)
		}
		tx.Canal = domain.Channel(canal)
		tx.Status = domain.TransactionStatus(status)
		items = append(items, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.TransactionRepository = (*TransactionRepositoryPG)(nil)
