package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/apperrors"
)

// AssetCategory identifies the class of a fixed asset. The enum is closed:
// an unrecognized category is a validation error, never a silent fallback.
type AssetCategory string

const (
	CategoryEquipment AssetCategory = "EQUIPMENT"
	CategoryVehicle   AssetCategory = "VEHICLE"
	CategoryBuilding  AssetCategory = "BUILDING"
	CategoryOffice    AssetCategory = "OFFICE"
	CategoryOther     AssetCategory = "OTHER"
)

// ParseAssetCategory maps a caller-supplied category string onto the enum.
func ParseAssetCategory(raw string) (AssetCategory, error) {
	switch AssetCategory(strings.ToUpper(strings.TrimSpace(raw))) {
	case CategoryEquipment:
		return CategoryEquipment, nil
	case CategoryVehicle:
		return CategoryVehicle, nil
	case CategoryBuilding:
		return CategoryBuilding, nil
	case CategoryOffice:
		return CategoryOffice, nil
	case CategoryOther:
		return CategoryOther, nil
	}
	return "", fmt.Errorf("%w: unknown asset category %q", apperrors.ErrValidation, raw)
}

// FixedAsset represents a capitalized asset in the fixed-asset sub-ledger.
// AccumulatedDepreciation and BookValue are mutated only by the depreciation
// and value-adjustment flows; the record is deleted only after a disposal
// posting has removed its remaining book value from the ledger.
type FixedAsset struct {
	AssetID                 string          `json:"assetID"` // Primary Key (UUID)
	AssetName               string          `json:"assetName"`
	Category                AssetCategory   `json:"category"`
	AcquisitionDate         time.Time       `json:"acquisitionDate"`
	Value                   decimal.Decimal `json:"value"`           // Historical cost, > 0
	UsefulLifeYears         int             `json:"usefulLifeYears"` // > 0
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"` // value - accumulatedDepreciation
	AuditFields
}

// Validate checks the asset invariants: positive cost and life, and
// 0 <= accumulatedDepreciation <= value with bookValue consistent.
func (a FixedAsset) Validate() error {
	if a.AssetName == "" {
		return fmt.Errorf("%w: asset name is required", apperrors.ErrValidation)
	}
	if a.Value.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: asset value must be positive, got %s", apperrors.ErrValidation, a.Value)
	}
	if a.UsefulLifeYears <= 0 {
		return fmt.Errorf("%w: useful life must be positive, got %d years", apperrors.ErrValidation, a.UsefulLifeYears)
	}
	if a.AccumulatedDepreciation.IsNegative() || a.AccumulatedDepreciation.GreaterThan(a.Value) {
		return fmt.Errorf("%w: accumulated depreciation %s outside [0, %s]", apperrors.ErrValidation, a.AccumulatedDepreciation, a.Value)
	}
	if !a.BookValue.Equal(a.Value.Sub(a.AccumulatedDepreciation)) {
		return fmt.Errorf("%w: book value %s does not equal value minus accumulated depreciation", apperrors.ErrValidation, a.BookValue)
	}
	return nil
}
