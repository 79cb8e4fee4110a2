package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
)

type postingRepository struct {
	pool *pgxpool.Pool
}

// NewPostingRepository creates a new repository for posting persistence.
// Each method commits the asset mutation and its transaction legs inside a
// single database transaction so no partial posting is ever observable.
func NewPostingRepository(pool *pgxpool.Pool) portsrepo.PostingRepository {
	return &postingRepository{pool: pool}
}

var _ portsrepo.PostingRepository = (*postingRepository)(nil)

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, date, entry_type, flow_tag, account_code, amount, project_id, description, notes, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

// queueLegs adds one insert per transaction leg to the batch.
func queueLegs(batch *pgx.Batch, legs []domain.Transaction) {
	for _, leg := range legs {
		batch.Queue(insertTransactionQuery,
			leg.TransactionID,
			leg.Date,
			leg.EntryType,
			leg.FlowTag,
			leg.AccountCode,
			leg.Amount,
			leg.ProjectID,
			leg.Description,
			leg.Notes,
			leg.CreatedAt,
			leg.CreatedBy,
			leg.LastUpdatedAt,
			leg.LastUpdatedBy,
		)
	}
}

// SaveAcquisition inserts a new asset and its acquisition legs atomically.
func (r *postingRepository) SaveAcquisition(ctx context.Context, asset domain.FixedAsset, legs []domain.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	assetQuery := `
		INSERT INTO fixed_assets (asset_id, asset_name, category, acquisition_date, value, useful_life_years, accumulated_depreciation, book_value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, assetQuery,
		asset.AssetID,
		asset.AssetName,
		asset.Category,
		asset.AcquisitionDate,
		asset.Value,
		asset.UsefulLifeYears,
		asset.AccumulatedDepreciation,
		asset.BookValue,
		asset.CreatedAt,
		asset.CreatedBy,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset %s: %w", asset.AssetID, err)
	}

	batch := &pgx.Batch{}
	queueLegs(batch, legs)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute leg batch for asset %s: %w", asset.AssetID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit acquisition for asset %s: %v", apperrors.ErrPersistence, asset.AssetID, err)
	}

	return nil
}

// UpdateAssetWithLegs updates the asset row and appends adjustment legs
// atomically. An empty leg slice updates the asset alone.
func (r *postingRepository) UpdateAssetWithLegs(ctx context.Context, asset domain.FixedAsset, legs []domain.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updateQuery := `
		UPDATE fixed_assets
		SET asset_name = $2, category = $3, acquisition_date = $4, value = $5, useful_life_years = $6, accumulated_depreciation = $7, book_value = $8, last_updated_at = $9, last_updated_by = $10
		WHERE asset_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		asset.AssetID,
		asset.AssetName,
		asset.Category,
		asset.AcquisitionDate,
		asset.Value,
		asset.UsefulLifeYears,
		asset.AccumulatedDepreciation,
		asset.BookValue,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if len(legs) > 0 {
		batch := &pgx.Batch{}
		queueLegs(batch, legs)

		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to execute leg batch for asset %s: %w", asset.AssetID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit adjustment for asset %s: %v", apperrors.ErrPersistence, asset.AssetID, err)
	}

	return nil
}

// DeleteAssetWithLegs appends the disposal legs and removes the asset row
// in the same transaction.
func (r *postingRepository) DeleteAssetWithLegs(ctx context.Context, assetID string, legs []domain.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	batch := &pgx.Batch{}
	queueLegs(batch, legs)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute disposal leg batch for asset %s: %w", assetID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM fixed_assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit disposal for asset %s: %v", apperrors.ErrPersistence, assetID, err)
	}

	return nil
}
