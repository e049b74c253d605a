package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"jakob/internal/domain"
	"jakob/internal/service"
)

// App bundles the dependencies shared by all handlers.
type App struct {
	Signup       *service.SignupService
	Donations    *service.DonationService
	Users        domain.UserRepository
	Transactions domain.TransactionRepository
	Stats        domain.StatsRepository
	Validate     *validator.Validate
	Logger       zerolog.Logger
}

func NewApp(
	signup *service.SignupService,
	donations *service.DonationService,
	users domain.UserRepository,
	transactions domain.TransactionRepository,
	stats domain.StatsRepository,
	logger zerolog.Logger,
) *App {
	return &App{
		Signup:       signup,
		Donations:    donations,
		Users:        users,
		Transactions: transactions,
		Stats:        stats,
		Validate:     validator.New(validator.WithRequiredStructEnabled()),
		Logger:       logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

// serviceError maps domain error kinds onto HTTP statuses. Anything without a
// caller-safe message is logged and surfaced as a generic failure.
func (a *App) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusBadRequest, domain.UserMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, domain.UserMessage(err))
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "Une erreur est survenue.")
	}
}
