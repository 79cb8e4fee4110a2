package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
)

type fixedAssetRepository struct {
	pool *pgxpool.Pool
}

// NewFixedAssetRepository creates a new repository for fixed asset data.
func NewFixedAssetRepository(pool *pgxpool.Pool) portsrepo.FixedAssetRepository {
	return &fixedAssetRepository{pool: pool}
}

var _ portsrepo.FixedAssetRepository = (*fixedAssetRepository)(nil)

const assetColumns = `asset_id, asset_name, category, acquisition_date, value, useful_life_years, accumulated_depreciation, book_value, created_at, created_by, last_updated_at, last_updated_by`

func scanAsset(row pgx.Row) (*domain.FixedAsset, error) {
	var asset domain.FixedAsset
	err := row.Scan(
		&asset.AssetID,
		&asset.AssetName,
		&asset.Category,
		&asset.AcquisitionDate,
		&asset.Value,
		&asset.UsefulLifeYears,
		&asset.AccumulatedDepreciation,
		&asset.BookValue,
		&asset.CreatedAt,
		&asset.CreatedBy,
		&asset.LastUpdatedAt,
		&asset.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// FindAssetByID retrieves a fixed asset by ID.
func (r *fixedAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	query := fmt.Sprintf(`SELECT %s FROM fixed_assets WHERE asset_id = $1;`, assetColumns)

	asset, err := scanAsset(r.pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}
	return asset, nil
}

// ListAssets returns all fixed assets ordered by acquisition date.
func (r *fixedAssetRepository) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	query := fmt.Sprintf(`SELECT %s FROM fixed_assets ORDER BY acquisition_date, asset_id;`, assetColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset row: %w", err)
		}
		assets = append(assets, *asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed asset rows: %w", err)
	}

	return assets, nil
}
