package domain

import (
	"fmt"

	"github.com/soildynamics/geoledger/internal/apperrors"
)

// Account codes the posting engine routes to regardless of asset category.
const (
	BankAccountCode                = "1102" // Cash/bank leg of every asset posting
	DepreciationExpenseAccountCode = "6105"
	DisposalLossAccountCode        = "6901" // Loss on disposal of fixed assets
)

// AssetAccountCodes holds the pair of account codes backing one asset
// category: the fixed-asset account and its accumulated-depreciation
// contra account.
type AssetAccountCodes struct {
	FixedAsset              string
	AccumulatedDepreciation string
}

// assetChart is the single data-driven category -> account-code table used
// by every posting operation. The former per-call-site switch statements
// collapsed into this map; OTHER is a deliberate caller choice with its own
// codes, not a fallback for unrecognized input.
var assetChart = map[AssetCategory]AssetAccountCodes{
	CategoryEquipment: {FixedAsset: "1501", AccumulatedDepreciation: "1601"},
	CategoryVehicle:   {FixedAsset: "1503", AccumulatedDepreciation: "1603"},
	CategoryBuilding:  {FixedAsset: "1505", AccumulatedDepreciation: "1605"},
	CategoryOffice:    {FixedAsset: "1504", AccumulatedDepreciation: "1604"},
	CategoryOther:     {FixedAsset: "1509", AccumulatedDepreciation: "1609"},
}

// AccountCodesFor resolves the account-code pair for an asset category.
func AccountCodesFor(category AssetCategory) (AssetAccountCodes, error) {
	codes, ok := assetChart[category]
	if !ok {
		return AssetAccountCodes{}, fmt.Errorf("%w: no account mapping for asset category %q", apperrors.ErrValidation, category)
	}
	return codes, nil
}

// ReferenceAccounts is the predefined account directory for the firm.
// Seeded at setup; the engine only ever reads it.
var ReferenceAccounts = []Account{
	{AccountCode: "1102", Name: "Bank", AccountType: Asset, Category: "Bank"},
	{AccountCode: "1501", Name: "Equipment", AccountType: Asset, Category: "Fixed Assets"},
	{AccountCode: "1503", Name: "Vehicles", AccountType: Asset, Category: "Fixed Assets"},
	{AccountCode: "1504", Name: "Office Equipment", AccountType: Asset, Category: "Fixed Assets"},
	{AccountCode: "1505", Name: "Buildings", AccountType: Asset, Category: "Fixed Assets"},
	{AccountCode: "1509", Name: "Other Fixed Assets", AccountType: Asset, Category: "Fixed Assets"},
	{AccountCode: "1601", Name: "Accumulated Depreciation - Equipment", AccountType: Asset, Category: "Accumulated Depreciation"},
	{AccountCode: "1603", Name: "Accumulated Depreciation - Vehicles", AccountType: Asset, Category: "Accumulated Depreciation"},
	{AccountCode: "1604", Name: "Accumulated Depreciation - Office Equipment", AccountType: Asset, Category: "Accumulated Depreciation"},
	{AccountCode: "1605", Name: "Accumulated Depreciation - Buildings", AccountType: Asset, Category: "Accumulated Depreciation"},
	{AccountCode: "1609", Name: "Accumulated Depreciation - Other", AccountType: Asset, Category: "Accumulated Depreciation"},
	{AccountCode: "6105", Name: "Depreciation Expense", AccountType: Expense, Category: "Operating Expenses"},
	{AccountCode: "6901", Name: "Loss on Asset Disposal", AccountType: Expense, Category: "Other Expenses"},
}
