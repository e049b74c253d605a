package repo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"jakob/internal/domain"
	"jakob/internal/infra"
	"jakob/internal/sqlinline"
)

// StatsRepositoryPG implements domain.StatsRepository using PostgreSQL.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStatsRepository creates a new stats repo.
func NewStatsRepository(sql infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sql}
}

// Summary returns platform-wide user and donation totals.
func (r *StatsRepositoryPG) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QStatsSummary)
	var s domain.StatsSummary
	var gross, fee string
	if err := row.Scan(&s.TotalUsers, &s.TotalCreators, &s.TotalDonations, &gross, &fee, &s.PendingDonations, &s.Donations24h); err != nil {
		return nil, err
	}
	var err error
	if s.GrossTotal, err = decimal.NewFromString(gross); err != nil {
		return nil, fmt.Errorf("parse gross_total: %w", err)
	}
	if s.PlatformFeeTotal, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("parse fee_total: %w", err)
	}
	return &s, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
