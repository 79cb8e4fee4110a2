package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
	"github.com/soildynamics/geoledger/internal/dto"
	"github.com/soildynamics/geoledger/internal/utils/accounting"
)

// postingService translates fixed-asset lifecycle events into balanced
// double-entry postings and persists each posting atomically with its
// asset mutation.
type postingService struct {
	BaseService
	assetRepo    portsrepo.FixedAssetRepository
	postingRepo  portsrepo.PostingRepository
	depreciation portssvc.DepreciationCalculator
	now          func() time.Time
}

// PostingServiceOption is a functional option for configuring the posting service.
type PostingServiceOption func(*postingService)

// WithClock overrides the wall clock, used by tests to pin "as of now"
// depreciation.
func WithClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates a new posting service.
func NewPostingService(assetRepo portsrepo.FixedAssetRepository, postingRepo portsrepo.PostingRepository, depreciation portssvc.DepreciationCalculator, options ...PostingServiceOption) portssvc.PostingService {
	svc := &postingService{
		assetRepo:    assetRepo,
		postingRepo:  postingRepo,
		depreciation: depreciation,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingService = (*postingService)(nil)

// newLeg builds one transaction leg of a posting.
func (s *postingService) newLeg(entry domain.EntryType, accountCode string, amount decimal.Decimal, date time.Time, description, userID string, now time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		EntryType:     entry,
		FlowTag:       domain.FlowNone,
		AccountCode:   accountCode,
		Amount:        amount,
		Description:   description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// AcquireAsset registers a fixed asset and posts its acquisition.
func (s *postingService) AcquireAsset(ctx context.Context, req dto.AcquireAssetRequest, userID string) (*domain.FixedAsset, []domain.Transaction, error) {
	category, err := domain.ParseAssetCategory(req.Category)
	if err != nil {
		return nil, nil, err
	}

	codes, err := domain.AccountCodesFor(category)
	if err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()

	// Assets acquired in the past carry catch-up depreciation as of today.
	initialDepreciation, err := s.depreciation.AccumulatedDepreciation(req.Value, req.UsefulLifeYears, req.AcquisitionDate, now)
	if err != nil {
		return nil, nil, err
	}

	asset := domain.FixedAsset{
		AssetID:                 uuid.NewString(),
		AssetName:               req.AssetName,
		Category:                category,
		AcquisitionDate:         req.AcquisitionDate,
		Value:                   req.Value,
		UsefulLifeYears:         req.UsefulLifeYears,
		AccumulatedDepreciation: initialDepreciation,
		BookValue:               s.depreciation.BookValue(req.Value, initialDepreciation),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := asset.Validate(); err != nil {
		return nil, nil, err
	}

	description := fmt.Sprintf("Acquisition of %s", asset.AssetName)
	legs := []domain.Transaction{
		s.newLeg(domain.Debit, codes.FixedAsset, asset.Value, req.AcquisitionDate, description, userID, now),
		s.newLeg(domain.Credit, domain.BankAccountCode, asset.Value, req.AcquisitionDate, description, userID, now),
	}
	if initialDepreciation.GreaterThan(decimal.Zero) {
		depDescription := fmt.Sprintf("Catch-up depreciation on %s", asset.AssetName)
		legs = append(legs,
			s.newLeg(domain.Debit, domain.DepreciationExpenseAccountCode, initialDepreciation, now, depDescription, userID, now),
			s.newLeg(domain.Credit, codes.AccumulatedDepreciation, initialDepreciation, now, depDescription, userID, now),
		)
	}

	if err := accounting.ValidateBalancedPosting(legs); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	if err := s.postingRepo.SaveAcquisition(ctx, asset, legs); err != nil {
		s.LogError(ctx, err, "Failed to save acquisition posting", "asset_name", asset.AssetName)
		return nil, nil, fmt.Errorf("failed to save acquisition posting: %w", err)
	}

	s.LogInfo(ctx, "Asset acquisition posted", "asset_id", asset.AssetID, "legs", len(legs))
	return &asset, legs, nil
}

// AdjustAssetValue revalues an asset and posts the delta.
func (s *postingService) AdjustAssetValue(ctx context.Context, assetID string, newValue decimal.Decimal, userID string) (*domain.FixedAsset, []domain.Transaction, error) {
	if newValue.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: new asset value must be positive, got %s", apperrors.ErrValidation, newValue)
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	if newValue.LessThan(asset.AccumulatedDepreciation) {
		return nil, nil, fmt.Errorf("%w: new value %s is below accumulated depreciation %s", apperrors.ErrValidation, newValue, asset.AccumulatedDepreciation)
	}

	delta := newValue.Sub(asset.Value)
	if delta.IsZero() {
		s.LogDebug(ctx, "Asset value unchanged, no posting emitted", "asset_id", assetID)
		return asset, nil, nil
	}

	codes, err := domain.AccountCodesFor(asset.Category)
	if err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	description := fmt.Sprintf("Value adjustment of %s", asset.AssetName)

	var legs []domain.Transaction
	if delta.GreaterThan(decimal.Zero) {
		legs = []domain.Transaction{
			s.newLeg(domain.Debit, codes.FixedAsset, delta, now, description, userID, now),
			s.newLeg(domain.Credit, domain.BankAccountCode, delta, now, description, userID, now),
		}
	} else {
		magnitude := delta.Abs()
		legs = []domain.Transaction{
			s.newLeg(domain.Debit, domain.BankAccountCode, magnitude, now, description, userID, now),
			s.newLeg(domain.Credit, codes.FixedAsset, magnitude, now, description, userID, now),
		}
	}

	if err := accounting.ValidateBalancedPosting(legs); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	asset.Value = newValue
	asset.BookValue = s.depreciation.BookValue(newValue, asset.AccumulatedDepreciation)
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.postingRepo.UpdateAssetWithLegs(ctx, *asset, legs); err != nil {
		s.LogError(ctx, err, "Failed to save value adjustment posting", "asset_id", assetID)
		return nil, nil, fmt.Errorf("failed to save value adjustment posting: %w", err)
	}

	s.LogInfo(ctx, "Asset value adjustment posted", "asset_id", assetID, "delta", delta.String())
	return asset, legs, nil
}

// AdjustAssetDepreciation raises accumulated depreciation and posts the delta.
// A non-positive delta is a no-op: depreciation never decreases through this path.
func (s *postingService) AdjustAssetDepreciation(ctx context.Context, assetID string, newAccumulated decimal.Decimal, userID string) (*domain.FixedAsset, []domain.Transaction, error) {
	if newAccumulated.IsNegative() {
		return nil, nil, fmt.Errorf("%w: accumulated depreciation cannot be negative, got %s", apperrors.ErrValidation, newAccumulated)
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	if newAccumulated.GreaterThan(asset.Value) {
		return nil, nil, fmt.Errorf("%w: accumulated depreciation %s exceeds asset value %s", apperrors.ErrValidation, newAccumulated, asset.Value)
	}

	delta := newAccumulated.Sub(asset.AccumulatedDepreciation)
	if delta.LessThanOrEqual(decimal.Zero) {
		s.LogDebug(ctx, "Depreciation not increased, no posting emitted", "asset_id", assetID, "delta", delta.String())
		return asset, nil, nil
	}

	codes, err := domain.AccountCodesFor(asset.Category)
	if err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	description := fmt.Sprintf("Depreciation of %s", asset.AssetName)
	legs := []domain.Transaction{
		s.newLeg(domain.Debit, domain.DepreciationExpenseAccountCode, delta, now, description, userID, now),
		s.newLeg(domain.Credit, codes.AccumulatedDepreciation, delta, now, description, userID, now),
	}

	if err := accounting.ValidateBalancedPosting(legs); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	asset.AccumulatedDepreciation = newAccumulated
	asset.BookValue = s.depreciation.BookValue(asset.Value, newAccumulated)
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.postingRepo.UpdateAssetWithLegs(ctx, *asset, legs); err != nil {
		s.LogError(ctx, err, "Failed to save depreciation posting", "asset_id", assetID)
		return nil, nil, fmt.Errorf("failed to save depreciation posting: %w", err)
	}

	s.LogInfo(ctx, "Asset depreciation posted", "asset_id", assetID, "delta", delta.String())
	return asset, legs, nil
}

// DisposeAsset clears the asset's sub-ledger and removes the asset record.
// Remaining book value is written off to disposal loss; accumulated
// depreciation is cleared against the asset account. Both sides of the
// asset's sub-ledger net to zero before the record is deleted.
func (s *postingService) DisposeAsset(ctx context.Context, assetID string, userID string) ([]domain.Transaction, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	codes, err := domain.AccountCodesFor(asset.Category)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	description := fmt.Sprintf("Disposal of %s", asset.AssetName)

	var legs []domain.Transaction
	if asset.BookValue.GreaterThan(decimal.Zero) {
		legs = append(legs,
			s.newLeg(domain.Debit, domain.DisposalLossAccountCode, asset.BookValue, now, description, userID, now),
			s.newLeg(domain.Credit, codes.FixedAsset, asset.BookValue, now, description, userID, now),
		)
	}
	if asset.AccumulatedDepreciation.GreaterThan(decimal.Zero) {
		legs = append(legs,
			s.newLeg(domain.Debit, codes.AccumulatedDepreciation, asset.AccumulatedDepreciation, now, description, userID, now),
			s.newLeg(domain.Credit, codes.FixedAsset, asset.AccumulatedDepreciation, now, description, userID, now),
		)
	}

	if len(legs) > 0 {
		if err := accounting.ValidateBalancedPosting(legs); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
		}
	}

	if err := s.postingRepo.DeleteAssetWithLegs(ctx, assetID, legs); err != nil {
		s.LogError(ctx, err, "Failed to save disposal posting", "asset_id", assetID)
		return nil, fmt.Errorf("failed to save disposal posting: %w", err)
	}

	s.LogInfo(ctx, "Asset disposal posted", "asset_id", assetID, "legs", len(legs))
	return legs, nil
}

// GetAssetByID retrieves a fixed asset.
func (s *postingService) GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return asset, nil
}

// ListAssets returns all fixed assets.
func (s *postingService) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}
