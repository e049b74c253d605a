package repo

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jakob/internal/domain"
	"jakob/internal/sqlinline"
)

func pendingTransaction() *domain.Transaction {
	return &domain.Transaction{
		RecipientID: 1,
		Gross:       decimal.NewFromInt(100),
		PlatformFee: decimal.RequireFromString("5"),
		Canal:       domain.ChannelMonCash,
		ExternalRef: "retry-key",
		Status:      domain.StatusPending,
	}
}

func TestTransactionRepoInsertCreated(t *testing.T) {
	sql := &fakeSQL{queryRow: func(string, ...any) pgx.Row {
		return simpleRow{scan: func(dest ...any) error {
			*(dest[0].(*int64)) = 7
			return nil
		}}
	}}
	r := NewTransactionRepository(sql)

	tx := pendingTransaction()
	outcome, err := r.Insert(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, domain.InsertCreated, outcome)
	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, sqlinline.QInsertTransaction, sql.lastQuery)
	// amounts cross the wire as fixed-point strings
	assert.Equal(t, "100.00", sql.lastArgs[2])
	assert.Equal(t, "5.00", sql.lastArgs[3])
}

func TestTransactionRepoInsertDuplicateReferenceIsAlreadyExists(t *testing.T) {
	// "on conflict do nothing returning id" yields no row on a duplicate
	sql := &fakeSQL{queryRow: func(string, ...any) pgx.Row {
		return simpleRow{}
	}}
	r := NewTransactionRepository(sql)

	outcome, err := r.Insert(context.Background(), pendingTransaction())
	require.NoError(t, err)
	assert.Equal(t, domain.InsertAlreadyExists, outcome)
}

func TestTransactionRepoInsertMapsMissingRecipient(t *testing.T) {
	sql := &fakeSQL{queryRow: func(string, ...any) pgx.Row {
		return simpleRow{scan: func(...any) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "transactions_jakob_recipient_id_fkey"}
		}}
	}}
	r := NewTransactionRepository(sql)

	_, err := r.Insert(context.Background(), pendingTransaction())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type txRow struct {
	id        int64
	gross     string
	fee       string
	canal     string
	ref       string
	status    string
	createdAt time.Time
}

type txRows struct {
	rowsBase
	rows []txRow
	idx  int
}

func (r *txRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *txRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	*(dest[0].(*int64)) = row.id
	*(dest[1].(**int64)) = nil
	*(dest[2].(*int64)) = 1
	*(dest[3].(*string)) = row.gross
	*(dest[4].(*string)) = row.fee
	*(dest[5].(*string)) = row.canal
	*(dest[6].(*string)) = row.ref
	*(dest[7].(*string)) = row.status
	*(dest[8].(*[]byte)) = []byte(`{}`)
	*(dest[9].(*time.Time)) = row.createdAt
	return nil
}

func TestTransactionRepoListByRecipient(t *testing.T) {
	created := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	sql := &fakeSQL{query: func(string, ...any) (pgx.Rows, error) {
		return &txRows{rows: []txRow{
			{id: 3, gross: "250.00", fee: "12.50", canal: "NATCASH", ref: "k-250", status: "PENDING", createdAt: created},
		}}, nil
	}}
	r := NewTransactionRepository(sql)

	items, err := r.ListByRecipient(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Gross.Equal(decimal.NewFromInt(250)))
	assert.True(t, items[0].PlatformFee.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, domain.ChannelNatCash, items[0].Canal)
	assert.Equal(t, []any{int64(1), 10}, sql.lastArgs)
}
