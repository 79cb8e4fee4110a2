package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/soildynamics/geoledger/internal/apperrors"
	"github.com/soildynamics/geoledger/internal/core/domain"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
	"github.com/soildynamics/geoledger/internal/core/services"
	"github.com/soildynamics/geoledger/internal/dto"
	"github.com/soildynamics/geoledger/internal/utils/accounting"
)

// --- Test Suite Setup ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockAssetRepo   *MockFixedAssetRepository
	mockPostingRepo *MockPostingRepository
	service         portssvc.PostingService
	now             time.Time
	userID          string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockFixedAssetRepository)
	suite.mockPostingRepo = new(MockPostingRepository)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.userID = uuid.NewString()
	suite.service = services.NewPostingService(
		suite.mockAssetRepo,
		suite.mockPostingRepo,
		services.NewDepreciationService(),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

// assertBalanced checks that a set of legs forms a valid double-entry posting.
func (suite *PostingServiceTestSuite) assertBalanced(legs []domain.Transaction) {
	suite.Require().NoError(accounting.ValidateBalancedPosting(legs))
	debits, credits := accounting.SumByEntryType(legs)
	suite.True(debits.Equal(credits), "debits %s should equal credits %s", debits, credits)
}

// legAmount returns the total amount posted to one account in one direction.
func legAmount(legs []domain.Transaction, entry domain.EntryType, accountCode string) decimal.Decimal {
	total := decimal.Zero
	for _, leg := range legs {
		if leg.EntryType == entry && leg.AccountCode == accountCode {
			total = total.Add(leg.Amount)
		}
	}
	return total
}

// --- Test Cases ---

func (suite *PostingServiceTestSuite) TestAcquireAsset_NewAsset() {
	ctx := context.Background()
	req := dto.AcquireAssetRequest{
		AssetName:       "CPT Rig",
		Category:        "EQUIPMENT",
		AcquisitionDate: suite.now,
		Value:           decimal.NewFromInt(50000000),
		UsefulLifeYears: 5,
	}

	suite.mockPostingRepo.On("SaveAcquisition", ctx, mock.AnythingOfType("domain.FixedAsset"), mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	asset, legs, err := suite.service.AcquireAsset(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.NotEmpty(asset.AssetID)
	suite.True(asset.AccumulatedDepreciation.IsZero())
	suite.True(asset.BookValue.Equal(req.Value))

	// Acquired today: just the acquisition pair, no catch-up depreciation.
	suite.Require().Len(legs, 2)
	suite.assertBalanced(legs)
	suite.True(legAmount(legs, domain.Debit, "1501").Equal(req.Value))
	suite.True(legAmount(legs, domain.Credit, domain.BankAccountCode).Equal(req.Value))

	suite.mockPostingRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestAcquireAsset_CatchUpDepreciation() {
	ctx := context.Background()
	// Exactly two mean Gregorian years before the pinned clock.
	acquired := suite.now.Add(-time.Duration(2*365.25*24) * time.Hour)
	req := dto.AcquireAssetRequest{
		AssetName:       "Drilling Rig",
		Category:        "EQUIPMENT",
		AcquisitionDate: acquired,
		Value:           decimal.NewFromInt(50000000),
		UsefulLifeYears: 5,
	}

	suite.mockPostingRepo.On("SaveAcquisition", ctx, mock.AnythingOfType("domain.FixedAsset"), mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	asset, legs, err := suite.service.AcquireAsset(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)

	// 2 years of a 5-year life on 50,000,000: 20,000,000 accumulated.
	expectedDep := decimal.NewFromInt(20000000)
	suite.True(asset.AccumulatedDepreciation.Equal(expectedDep), "got %s", asset.AccumulatedDepreciation)
	suite.True(asset.BookValue.Equal(decimal.NewFromInt(30000000)))

	suite.Require().Len(legs, 4)
	suite.assertBalanced(legs)
	suite.True(legAmount(legs, domain.Debit, "1501").Equal(req.Value))
	suite.True(legAmount(legs, domain.Credit, domain.BankAccountCode).Equal(req.Value))
	suite.True(legAmount(legs, domain.Debit, domain.DepreciationExpenseAccountCode).Equal(expectedDep))
	suite.True(legAmount(legs, domain.Credit, "1601").Equal(expectedDep))

	suite.mockPostingRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestAcquireAsset_UnknownCategory() {
	ctx := context.Background()
	req := dto.AcquireAssetRequest{
		AssetName:       "Mystery",
		Category:        "FURNITURE",
		AcquisitionDate: suite.now,
		Value:           decimal.NewFromInt(1000),
		UsefulLifeYears: 5,
	}

	_, _, err := suite.service.AcquireAsset(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "SaveAcquisition", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestAdjustAssetValue_Increase() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:                 assetID,
		AssetName:               "Site Vehicle",
		Category:                domain.CategoryVehicle,
		AcquisitionDate:         suite.now.AddDate(-1, 0, 0),
		Value:                   decimal.NewFromInt(300000),
		UsefulLifeYears:         4,
		AccumulatedDepreciation: decimal.NewFromInt(75000),
		BookValue:               decimal.NewFromInt(225000),
	}
	newValue := decimal.NewFromInt(360000)

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockPostingRepo.On("UpdateAssetWithLegs", ctx, mock.AnythingOfType("domain.FixedAsset"), mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	asset, legs, err := suite.service.AdjustAssetValue(ctx, assetID, newValue, suite.userID)

	suite.Require().NoError(err)
	suite.True(asset.Value.Equal(newValue))
	suite.True(asset.BookValue.Equal(decimal.NewFromInt(285000)))

	delta := decimal.NewFromInt(60000)
	suite.Require().Len(legs, 2)
	suite.assertBalanced(legs)
	suite.True(legAmount(legs, domain.Debit, "1503").Equal(delta))
	suite.True(legAmount(legs, domain.Credit, domain.BankAccountCode).Equal(delta))

	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockPostingRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestAdjustAssetValue_Decrease() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:         assetID,
		AssetName:       "Office Scanner",
		Category:        domain.CategoryOffice,
		AcquisitionDate: suite.now.AddDate(-1, 0, 0),
		Value:           decimal.NewFromInt(100000),
		UsefulLifeYears: 4,
		BookValue:       decimal.NewFromInt(100000),
	}
	newValue := decimal.NewFromInt(80000)

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockPostingRepo.On("UpdateAssetWithLegs", ctx, mock.AnythingOfType("domain.FixedAsset"), mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	_, legs, err := suite.service.AdjustAssetValue(ctx, assetID, newValue, suite.userID)

	suite.Require().NoError(err)
	magnitude := decimal.NewFromInt(20000)
	suite.Require().Len(legs, 2)
	suite.assertBalanced(legs)
	// Write-down reverses the direction of the revaluation pair.
	suite.True(legAmount(legs, domain.Debit, domain.BankAccountCode).Equal(magnitude))
	suite.True(legAmount(legs, domain.Credit, "1504").Equal(magnitude))
}

func (suite *PostingServiceTestSuite) TestAdjustAssetValue_ZeroDelta() {
	ctx := context.Background()
	assetID := uuid.NewString()
	value := decimal.NewFromInt(500000)
	existing := &domain.FixedAsset{
		AssetID:         assetID,
		AssetName:       "Loader",
		Category:        domain.CategoryEquipment,
		AcquisitionDate: suite.now.AddDate(-1, 0, 0),
		Value:           value,
		UsefulLifeYears: 5,
		BookValue:       value,
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()

	asset, legs, err := suite.service.AdjustAssetValue(ctx, assetID, value, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(asset)
	suite.Empty(legs)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "UpdateAssetWithLegs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestAdjustAssetValue_NonPositive() {
	ctx := context.Background()

	_, _, err := suite.service.AdjustAssetValue(ctx, uuid.NewString(), decimal.Zero, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "FindAssetByID", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestAdjustAssetValue_BelowAccumulatedDepreciation() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:                 assetID,
		AssetName:               "Old Rig",
		Category:                domain.CategoryEquipment,
		AcquisitionDate:         suite.now.AddDate(-4, 0, 0),
		Value:                   decimal.NewFromInt(1000000),
		UsefulLifeYears:         5,
		AccumulatedDepreciation: decimal.NewFromInt(800000),
		BookValue:               decimal.NewFromInt(200000),
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()

	_, _, err := suite.service.AdjustAssetValue(ctx, assetID, decimal.NewFromInt(700000), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "UpdateAssetWithLegs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestAdjustAssetDepreciation_Increase() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:                 assetID,
		AssetName:               "Excavator",
		Category:                domain.CategoryEquipment,
		AcquisitionDate:         suite.now.AddDate(-2, 0, 0),
		Value:                   decimal.NewFromInt(50000000),
		UsefulLifeYears:         5,
		AccumulatedDepreciation: decimal.NewFromInt(15000000),
		BookValue:               decimal.NewFromInt(35000000),
	}
	newAccumulated := decimal.NewFromInt(20000000)

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockPostingRepo.On("UpdateAssetWithLegs", ctx, mock.AnythingOfType("domain.FixedAsset"), mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	asset, legs, err := suite.service.AdjustAssetDepreciation(ctx, assetID, newAccumulated, suite.userID)

	suite.Require().NoError(err)
	suite.True(asset.AccumulatedDepreciation.Equal(newAccumulated))
	suite.True(asset.BookValue.Equal(decimal.NewFromInt(30000000)))

	delta := decimal.NewFromInt(5000000)
	suite.Require().Len(legs, 2)
	suite.assertBalanced(legs)
	suite.True(legAmount(legs, domain.Debit, domain.DepreciationExpenseAccountCode).Equal(delta))
	suite.True(legAmount(legs, domain.Credit, "1601").Equal(delta))
}

func (suite *PostingServiceTestSuite) TestAdjustAssetDepreciation_NoIncreaseIsNoop() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:                 assetID,
		AssetName:               "Excavator",
		Category:                domain.CategoryEquipment,
		AcquisitionDate:         suite.now.AddDate(-2, 0, 0),
		Value:                   decimal.NewFromInt(50000000),
		UsefulLifeYears:         5,
		AccumulatedDepreciation: decimal.NewFromInt(20000000),
		BookValue:               decimal.NewFromInt(30000000),
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Twice()

	// Same figure: no-op.
	_, legs, err := suite.service.AdjustAssetDepreciation(ctx, assetID, decimal.NewFromInt(20000000), suite.userID)
	suite.Require().NoError(err)
	suite.Empty(legs)

	// Lower figure: also a no-op, depreciation never decreases here.
	_, legs, err = suite.service.AdjustAssetDepreciation(ctx, assetID, decimal.NewFromInt(10000000), suite.userID)
	suite.Require().NoError(err)
	suite.Empty(legs)

	suite.mockPostingRepo.AssertNotCalled(suite.T(), "UpdateAssetWithLegs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestAdjustAssetDepreciation_ExceedsValue() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:         assetID,
		AssetName:       "Excavator",
		Category:        domain.CategoryEquipment,
		AcquisitionDate: suite.now.AddDate(-2, 0, 0),
		Value:           decimal.NewFromInt(50000000),
		UsefulLifeYears: 5,
		BookValue:       decimal.NewFromInt(50000000),
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()

	_, _, err := suite.service.AdjustAssetDepreciation(ctx, assetID, decimal.NewFromInt(60000000), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestDisposeAsset_WritesOffBookValueAndDepreciation() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:                 assetID,
		AssetName:               "Drilling Rig",
		Category:                domain.CategoryEquipment,
		AcquisitionDate:         suite.now.AddDate(-4, -6, 0),
		Value:                   decimal.NewFromInt(50000000),
		UsefulLifeYears:         5,
		AccumulatedDepreciation: decimal.NewFromInt(45000000),
		BookValue:               decimal.NewFromInt(5000000),
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockPostingRepo.On("DeleteAssetWithLegs", ctx, assetID, mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	legs, err := suite.service.DisposeAsset(ctx, assetID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(legs, 4)
	suite.assertBalanced(legs)

	// Remaining book value goes to disposal loss.
	suite.True(legAmount(legs, domain.Debit, domain.DisposalLossAccountCode).Equal(decimal.NewFromInt(5000000)))
	// Accumulated depreciation is cleared against the asset account.
	suite.True(legAmount(legs, domain.Debit, "1601").Equal(decimal.NewFromInt(45000000)))
	// The asset account is fully relieved of its historical cost.
	suite.True(legAmount(legs, domain.Credit, "1501").Equal(decimal.NewFromInt(50000000)))

	suite.mockPostingRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestDisposeAsset_FullyDepreciated() {
	ctx := context.Background()
	assetID := uuid.NewString()
	existing := &domain.FixedAsset{
		AssetID:                 assetID,
		AssetName:               "Worn Compressor",
		Category:                domain.CategoryEquipment,
		AcquisitionDate:         suite.now.AddDate(-6, 0, 0),
		Value:                   decimal.NewFromInt(2000000),
		UsefulLifeYears:         5,
		AccumulatedDepreciation: decimal.NewFromInt(2000000),
		BookValue:               decimal.Zero,
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockPostingRepo.On("DeleteAssetWithLegs", ctx, assetID, mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	legs, err := suite.service.DisposeAsset(ctx, assetID, suite.userID)

	suite.Require().NoError(err)
	// No loss leg: only the depreciation clearing pair.
	suite.Require().Len(legs, 2)
	suite.assertBalanced(legs)
	suite.True(legAmount(legs, domain.Debit, domain.DisposalLossAccountCode).IsZero())
}

func (suite *PostingServiceTestSuite) TestDisposeAsset_NotFound() {
	ctx := context.Background()
	assetID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.DisposeAsset(ctx, assetID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "DeleteAssetWithLegs", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
