package services

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// DepreciationCalculator computes straight-line depreciation figures.
// All operations are pure; clamping to [0, value] is a documented
// saturating policy on valid input, invalid input always errors.
type DepreciationCalculator interface {
	// AccumulatedDepreciation computes depreciation accrued between the
	// acquisition date and asOf, clamped to [0, value]. Acquisition dates
	// in the future yield zero.
	AccumulatedDepreciation(value decimal.Decimal, usefulLifeYears int, acquisitionDate, asOf time.Time) (decimal.Decimal, error)

	// BookValue returns value minus accumulated depreciation.
	BookValue(value, accumulated decimal.Decimal) decimal.Decimal

	// MonthlySchedule returns a lazy, restartable sequence of
	// usefulLifeYears x 12 monthly periods. The final period is adjusted so
	// cumulative depreciation equals the asset value exactly.
	MonthlySchedule(asset domain.FixedAsset) (iter.Seq[domain.SchedulePeriod], error)
}
