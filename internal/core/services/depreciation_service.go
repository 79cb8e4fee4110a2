package services

import (
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
)

// hoursPerYear uses the mean Gregorian year so asset age is stable across
// leap years.
const hoursPerYear = 24 * 365.25

// depreciationService computes straight-line depreciation.
type depreciationService struct{}

// NewDepreciationService creates a new depreciation calculator.
func NewDepreciationService() portssvc.DepreciationCalculator {
	return &depreciationService{}
}

var _ portssvc.DepreciationCalculator = (*depreciationService)(nil)

// AccumulatedDepreciation computes straight-line depreciation accrued from
// acquisitionDate to asOf: min(age, usefulLife) x (value / usefulLife),
// clamped to [0, value]. Acquisition dates in the future yield zero.
func (s *depreciationService) AccumulatedDepreciation(value decimal.Decimal, usefulLifeYears int, acquisitionDate, asOf time.Time) (decimal.Decimal, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: asset value must be positive, got %s", apperrors.ErrValidation, value)
	}
	if usefulLifeYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: useful life must be positive, got %d years", apperrors.ErrValidation, usefulLifeYears)
	}

	if !asOf.After(acquisitionDate) {
		return decimal.Zero, nil
	}

	ageYears := decimal.NewFromFloat(asOf.Sub(acquisitionDate).Hours() / hoursPerYear)
	life := decimal.NewFromInt(int64(usefulLifeYears))
	if ageYears.GreaterThan(life) {
		ageYears = life
	}

	raw := ageYears.Mul(value.Div(life))

	// Saturate rather than allow a negative or over-cost result.
	if raw.IsNegative() {
		return decimal.Zero, nil
	}
	if raw.GreaterThan(value) {
		return value, nil
	}
	return raw, nil
}

// BookValue returns value minus accumulated depreciation.
func (s *depreciationService) BookValue(value, accumulated decimal.Decimal) decimal.Decimal {
	return value.Sub(accumulated)
}

// MonthlySchedule produces the asset's full straight-line schedule as a
// lazy sequence of usefulLifeYears x 12 monthly periods. Each period's
// depreciation is the rounded monthly charge except the last, which absorbs
// the rounding residue so cumulative depreciation equals the asset value
// exactly. Book value is floored at zero.
func (s *depreciationService) MonthlySchedule(asset domain.FixedAsset) (iter.Seq[domain.SchedulePeriod], error) {
	if asset.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: asset value must be positive, got %s", apperrors.ErrValidation, asset.Value)
	}
	if asset.UsefulLifeYears <= 0 {
		return nil, fmt.Errorf("%w: useful life must be positive, got %d years", apperrors.ErrValidation, asset.UsefulLifeYears)
	}

	months := asset.UsefulLifeYears * 12
	monthly := asset.Value.Div(decimal.NewFromInt(int64(months))).Round(2)

	return func(yield func(domain.SchedulePeriod) bool) {
		accumulated := decimal.Zero
		for i := 0; i < months; i++ {
			charge := monthly
			if i == months-1 {
				charge = asset.Value.Sub(accumulated)
			}
			accumulated = accumulated.Add(charge)

			bookValue := asset.Value.Sub(accumulated)
			if bookValue.IsNegative() {
				bookValue = decimal.Zero
			}

			period := domain.SchedulePeriod{
				Date:                    asset.AcquisitionDate.AddDate(0, i+1, 0),
				Depreciation:            charge,
				AccumulatedDepreciation: accumulated,
				BookValue:               bookValue,
			}
			if !yield(period) {
				return
			}
		}
	}, nil
}
