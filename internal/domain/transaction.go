package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Channel is the payment rail selected for a donation.
type Channel string

const (
	ChannelMonCash Channel = "MONCASH"
	ChannelNatCash Channel = "NATCASH"
)

// Valid reports whether the channel is one of the supported rails.
func (c Channel) Valid() bool {
	return c == ChannelMonCash || c == ChannelNatCash
}

// TransactionStatus tracks a donation through settlement.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

var (
	// MinDonation is the smallest accepted gross amount, in gourdes. The
	// schema enforces the same bound with a check constraint.
	MinDonation = decimal.NewFromInt(50)

	feeRate = decimal.New(5, -2) // 5%
)

// PlatformFee computes the platform cut on a gross amount, rounded to two
// fractional digits half away from zero.
func PlatformFee(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(feeRate).Round(2)
}

// Transaction is a recorded donation.
type Transaction struct {
	ID          int64
	UserID      *int64 // nil for anonymous donations
	RecipientID int64
	Gross       decimal.Decimal
	PlatformFee decimal.Decimal
	Canal       Channel
	ExternalRef string
	Status      TransactionStatus
	Metadata    []byte
	CreatedAt   time.Time
}
