package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, username, telephone string) (int64, error)
	ExistsByUsernameOrPhone(ctx context.Context, username, telephone string) (bool, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetCreatorByID(ctx context.Context, id int64) (*User, error)
}

// InsertOutcome tags the result of an idempotent transaction insert.
type InsertOutcome int

const (
	InsertCreated InsertOutcome = iota
	InsertAlreadyExists
)

// TransactionRepository handles donation persistence.
type TransactionRepository interface {
	// Insert writes a pending transaction. A duplicate external reference is
	// not an error: it yields InsertAlreadyExists and no new row.
	Insert(ctx context.Context, tx *Transaction) (InsertOutcome, error)
	ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]Transaction, error)
}

// StatsRepository aggregates platform totals.
type StatsRepository interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}
