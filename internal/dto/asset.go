package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// AcquireAssetRequest defines the data needed to register a fixed asset.
// The acquisition date may lie in the past; the posting engine then books
// the catch-up depreciation alongside the acquisition itself.
type AcquireAssetRequest struct {
	AssetName       string          `json:"assetName" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	AcquisitionDate time.Time       `json:"acquisitionDate" binding:"required"`
	Value           decimal.Decimal `json:"value" binding:"required"`
	UsefulLifeYears int             `json:"usefulLifeYears" binding:"required,gt=0"`
}

// AdjustAssetValueRequest defines the data for an asset revaluation.
type AdjustAssetValueRequest struct {
	NewValue decimal.Decimal `json:"newValue" binding:"required"`
}

// AdjustAssetDepreciationRequest defines the data for a depreciation catch-up.
type AdjustAssetDepreciationRequest struct {
	NewAccumulatedDepreciation decimal.Decimal `json:"newAccumulatedDepreciation" binding:"required"`
}

// AssetResponse defines the data returned for a fixed asset.
type AssetResponse struct {
	AssetID                 string               `json:"assetID"`
	AssetName               string               `json:"assetName"`
	Category                domain.AssetCategory `json:"category"`
	AcquisitionDate         time.Time            `json:"acquisitionDate"`
	Value                   decimal.Decimal      `json:"value"`
	UsefulLifeYears         int                  `json:"usefulLifeYears"`
	AccumulatedDepreciation decimal.Decimal      `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal      `json:"bookValue"`
	CreatedAt               time.Time            `json:"createdAt"`
	LastUpdatedAt           time.Time            `json:"lastUpdatedAt"`
}

// ToAssetResponse converts a domain.FixedAsset to AssetResponse.
func ToAssetResponse(a *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:                 a.AssetID,
		AssetName:               a.AssetName,
		Category:                a.Category,
		AcquisitionDate:         a.AcquisitionDate,
		Value:                   a.Value,
		UsefulLifeYears:         a.UsefulLifeYears,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		BookValue:               a.BookValue,
		CreatedAt:               a.CreatedAt,
		LastUpdatedAt:           a.LastUpdatedAt,
	}
}

// ToListAssetResponse converts a slice of assets to response DTOs.
func ToListAssetResponse(assets []domain.FixedAsset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

// DisposalResponse returns the legs posted when an asset is disposed of.
type DisposalResponse struct {
	AssetID      string                `json:"assetID"`
	Transactions []TransactionResponse `json:"transactions"`
}

// SchedulePeriodResponse is one row of a depreciation schedule.
type SchedulePeriodResponse struct {
	Date                    time.Time       `json:"date"`
	Depreciation            decimal.Decimal `json:"depreciation"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// ScheduleResponse is a full monthly depreciation schedule for one asset.
type ScheduleResponse struct {
	AssetID string                   `json:"assetID"`
	Periods []SchedulePeriodResponse `json:"periods"`
}

// ToSchedulePeriodResponse converts one schedule period.
func ToSchedulePeriodResponse(p domain.SchedulePeriod) SchedulePeriodResponse {
	return SchedulePeriodResponse{
		Date:                    p.Date,
		Depreciation:            p.Depreciation,
		AccumulatedDepreciation: p.AccumulatedDepreciation,
		BookValue:               p.BookValue,
	}
}
