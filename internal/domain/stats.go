package domain

import "github.com/shopspring/decimal"

// StatsSummary holds platform-wide counters for the stats endpoint.
type StatsSummary struct {
	TotalUsers       int64
	TotalCreators    int64
	TotalDonations   int64
	GrossTotal       decimal.Decimal
	PlatformFeeTotal decimal.Decimal
	PendingDonations int64
	Donations24h     int64
}
