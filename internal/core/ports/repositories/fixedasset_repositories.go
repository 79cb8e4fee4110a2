package repositories

import (
	"context"

	"github.com/soildynamics/geoledger/internal/core/domain"
)

// FixedAssetRepository provides read access to fixed assets.
type FixedAssetRepository interface {
	// FindAssetByID retrieves a fixed asset by ID.
	// Returns apperrors.ErrNotFound if no such asset exists.
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// ListAssets returns all fixed assets.
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
}

// PostingRepository persists the output of the posting engine. Every method
// commits its transaction legs together with the asset mutation as a single
// database transaction: either everything is durable or nothing is. No
// partial posting is ever observable.
type PostingRepository interface {
	// SaveAcquisition inserts a new asset and its acquisition legs.
	SaveAcquisition(ctx context.Context, asset domain.FixedAsset, legs []domain.Transaction) error

	// UpdateAssetWithLegs updates an existing asset and appends the legs of
	// a value or depreciation adjustment. An empty leg slice updates the
	// asset alone.
	UpdateAssetWithLegs(ctx context.Context, asset domain.FixedAsset, legs []domain.Transaction) error

	// DeleteAssetWithLegs appends the disposal legs and removes the asset
	// record in the same transaction.
	DeleteAssetWithLegs(ctx context.Context, assetID string, legs []domain.Transaction) error
}
