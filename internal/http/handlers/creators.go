package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// CreatorProfile returns the public profile used by donation pages.
func (a *App) CreatorProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.error(w, http.StatusBadRequest, "Identifiant invalide.")
		return
	}

	u, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"id":           u.ID,
		"username":     u.Username,
		"display_name": u.DisplayName(),
		"is_creator":   u.IsCreator,
		"active":       u.Active,
		"created_at":   u.CreatedAt.Format(time.RFC3339),
	})
}

// CreatorDonations lists the most recent donations received by a creator.
func (a *App) CreatorDonations(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.error(w, http.StatusBadRequest, "Identifiant invalide.")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	items, err := a.Transactions.ListByRecipient(r.Context(), id, limit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donations")
		a.error(w, http.StatusInternalServerError, "Une erreur est survenue.")
		return
	}

	out := make([]map[string]any, 0, len(items))
	for _, tx := range items {
		out = append(out, map[string]any{
			"id":           tx.ID,
			"montant_brut": tx.Gross.StringFixed(2),
			"platform_fee": tx.PlatformFee.StringFixed(2),
			"canal":        tx.Canal,
			"statut":       tx.Status,
			"created_at":   tx.CreatedAt.Format(time.RFC3339),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}
