package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"jakob/internal/domain"
	"jakob/internal/service"
)

// flexID tolerates identifiers sent either as JSON numbers or as quoted
// strings, which is what form-driven clients produce.
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid identifier %q", s)
	}
	*f = flexID(v)
	return nil
}

type donationRequest struct {
	CreatorID      flexID          `json:"createurId"`
	Montant        decimal.Decimal `json:"montant"`
	Canal          string          `json:"canal" validate:"omitempty,oneof=MONCASH NATCASH"`
	IdempotencyKey string          `json:"idempotencyKey" validate:"omitempty,max=100"`
}

// DonationsCreate records a donation for a creator. Retries carrying the same
// idempotency key receive the same success payload without a second row.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Requête JSON invalide.")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "Données invalides.")
		return
	}

	receipt, err := a.Donations.RecordDonation(r.Context(), service.DonationRequest{
		CreatorID:      int64(req.CreatorID),
		Amount:         req.Montant,
		Canal:          domain.Channel(req.Canal),
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":     true,
		"payment_url": receipt.PaymentURL,
	})
}
