package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"jakob/internal/domain"
)

// SignupService registers new supporter accounts.
type SignupService struct {
	users       domain.UserRepository
	countryCode string
	logger      zerolog.Logger
}

// NewSignupService creates a SignupService.
func NewSignupService(users domain.UserRepository, countryCode string, logger zerolog.Logger) *SignupService {
	return &SignupService{users: users, countryCode: countryCode, logger: logger}
}

// RegisterUser normalizes the handle and phone number, rejects duplicates and
// inserts the account. It returns the new user identifier.
func (s *SignupService) RegisterUser(ctx context.Context, username, telephone string) (int64, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(telephone) == "" {
		return 0, domain.E(domain.ErrInvalidInput, "Username et téléphone requis.")
	}

	handle := domain.NormalizeUsername(username)
	phone := domain.NormalizePhone(telephone, s.countryCode)
	if handle == "" || phone == "" {
		return 0, domain.E(domain.ErrInvalidInput, "Username et téléphone requis.")
	}

	taken, err := s.users.ExistsByUsernameOrPhone(ctx, handle, phone)
	if err != nil {
		return 0, fmt.Errorf("check duplicates: %w", err)
	}
	if taken {
		return 0, domain.E(domain.ErrConflict, "Ce numéro ou ce nom d'utilisateur est déjà pris.")
	}

	id, err := s.users.Create(ctx, handle, phone)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// lost the race against a concurrent signup
			return 0, domain.E(domain.ErrConflict, "Ce numéro ou ce nom d'utilisateur est déjà pris.")
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Int64("user_id", id).Str("username", handle).Msg("user registered")
	return id, nil
}
