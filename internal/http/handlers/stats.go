package handlers

import "net/http"

// StatsSummary exposes platform totals for the dashboard.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	s, err := a.Stats.Summary(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load stats")
		a.error(w, http.StatusInternalServerError, "Une erreur est survenue.")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_users":        s.TotalUsers,
		"total_creators":     s.TotalCreators,
		"total_donations":    s.TotalDonations,
		"gross_total":        s.GrossTotal.StringFixed(2),
		"platform_fee_total": s.PlatformFeeTotal.StringFixed(2),
		"pending_donations":  s.PendingDonations,
		"donations_last_24h": s.Donations24h,
	})
}
