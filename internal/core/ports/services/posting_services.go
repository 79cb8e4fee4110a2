package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
	"github.com/soildynamics/geoledger/internal/dto"
)

// PostingService is the fixed-asset lifecycle posting engine. Every
// operation that emits ledger legs guarantees total debits equal total
// credits for the event, and persists the legs together with the asset
// mutation atomically.
type PostingService interface {
	// AcquireAsset registers a new fixed asset and posts its acquisition:
	// debit the category's fixed-asset account, credit bank, plus a
	// depreciation expense/accumulated pair when the asset was acquired in
	// the past. Returns the stored asset and the posted legs.
	AcquireAsset(ctx context.Context, req dto.AcquireAssetRequest, userID string) (*domain.FixedAsset, []domain.Transaction, error)

	// AdjustAssetValue revalues an asset, posting the delta between the new
	// and current value. A zero delta emits no transactions.
	AdjustAssetValue(ctx context.Context, assetID string, newValue decimal.Decimal, userID string) (*domain.FixedAsset, []domain.Transaction, error)

	// AdjustAssetDepreciation raises accumulated depreciation to the given
	// figure, posting the positive delta. A non-positive delta is a no-op:
	// depreciation never decreases through this path.
	AdjustAssetDepreciation(ctx context.Context, assetID string, newAccumulated decimal.Decimal, userID string) (*domain.FixedAsset, []domain.Transaction, error)

	// DisposeAsset clears the asset's sub-ledger (remaining book value to
	// disposal loss, accumulated depreciation against the asset account)
	// and deletes the asset record, all in one transaction.
	DisposeAsset(ctx context.Context, assetID string, userID string) ([]domain.Transaction, error)

	// GetAssetByID retrieves a fixed asset.
	GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// ListAssets returns all fixed assets.
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
}
