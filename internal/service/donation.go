package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"jakob/internal/domain"
)

// DonationRequest carries a validated-enough donation submission. Amount keeps
// the caller's exact decimal value.
type DonationRequest struct {
	CreatorID      int64
	DonorID        *int64
	Amount         decimal.Decimal
	Canal          domain.Channel
	IdempotencyKey string
}

// DonationReceipt is the caller-visible outcome of a recorded donation.
// Replayed is true when the idempotency key had already been persisted; the
// receipt is identical either way.
type DonationReceipt struct {
	PaymentURL string
	Replayed   bool
}

// DonationService records supporter donations against creator accounts.
type DonationService struct {
	users        domain.UserRepository
	transactions domain.TransactionRepository
	redirectURL  string
	logger       zerolog.Logger
}

// NewDonationService creates a DonationService. redirectURL is the completion
// destination handed back to the client in place of a payment gateway URL.
func NewDonationService(users domain.UserRepository, transactions domain.TransactionRepository, redirectURL string, logger zerolog.Logger) *DonationService {
	return &DonationService{users: users, transactions: transactions, redirectURL: redirectURL, logger: logger}
}

// RecordDonation validates the submission, computes the platform fee and
// persists a pending transaction. Submitting the same idempotency key twice
// keeps a single row and returns the same receipt both times.
func (s *DonationService) RecordDonation(ctx context.Context, req DonationRequest) (*DonationReceipt, error) {
	if req.CreatorID == 0 || req.Amount.IsZero() || req.Canal == "" {
		return nil, domain.E(domain.ErrInvalidInput, "Données incomplètes.")
	}
	if !req.Canal.Valid() {
		return nil, domain.E(domain.ErrInvalidInput, "Canal de paiement inconnu.")
	}
	if req.Amount.LessThan(domain.MinDonation) {
		return nil, domain.E(domain.ErrInvalidInput, fmt.Sprintf("Minimum %s gourdes.", domain.MinDonation))
	}

	if _, err := s.users.GetCreatorByID(ctx, req.CreatorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.E(domain.ErrNotFound, "Créateur introuvable.")
		}
		return nil, fmt.Errorf("lookup creator: %w", err)
	}

	ref := req.IdempotencyKey
	if ref == "" {
		ref = newDonationRef()
	}

	tx := &domain.Transaction{
		UserID:      req.DonorID,
		RecipientID: req.CreatorID,
		Gross:       req.Amount,
		PlatformFee: domain.PlatformFee(req.Amount),
		Canal:       req.Canal,
		ExternalRef: ref,
		Status:      domain.StatusPending,
	}

	outcome, err := s.transactions.Insert(ctx, tx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.E(domain.ErrNotFound, "Créateur introuvable.")
		}
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	receipt := &DonationReceipt{PaymentURL: s.redirectURL, Replayed: outcome == domain.InsertAlreadyExists}
	if receipt.Replayed {
		s.logger.Info().Str("reference", ref).Msg("donation replayed, keeping prior transaction")
		return receipt, nil
	}

	s.logger.Info().
		Int64("transaction_id", tx.ID).
		Int64("recipient_id", req.CreatorID).
		Str("canal", string(req.Canal)).
		Str("montant", req.Amount.StringFixed(2)).
		Str("fee", tx.PlatformFee.StringFixed(2)).
		Msg("donation recorded")
	return receipt, nil
}

// newDonationRef builds a DON_<unique>_<epoch> reference for clients that did
// not send an idempotency key.
func newDonationRef() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("DON_%s_%d", id, time.Now().Unix())
}
