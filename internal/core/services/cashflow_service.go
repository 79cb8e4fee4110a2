package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
	portssvc "github.com/soildynamics/geoledger/internal/core/ports/services"
)

// cashFlowService partitions ledger transactions into the three
// statement-of-cash-flows activity categories.
type cashFlowService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CashFlowCategoryRepository
}

// NewCashFlowService creates a new cash-flow service.
func NewCashFlowService(transactionRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CashFlowCategoryRepository) portssvc.CashFlowService {
	return &cashFlowService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.CashFlowService = (*cashFlowService)(nil)

// ClassifyTransactions partitions the given transactions into activity
// buckets. Transactions dated outside [from, to] are ignored; transactions
// on account codes absent from the category map are excluded from the
// buckets but counted, and their distinct codes listed, so report consumers
// can detect coverage gaps. A debit is a cash inflow (+), a credit an
// outflow (-); per-bucket totals and the net always reconcile with the sum
// of all signed entries.
func ClassifyTransactions(transactions []domain.Transaction, categoryMap map[string]domain.CashFlowCategoryEntry, from, to time.Time) *domain.CashFlowReport {
	report := &domain.CashFlowReport{
		Operating: domain.CashFlowSection{Entries: []domain.ClassifiedTransaction{}, Total: decimal.Zero},
		Investing: domain.CashFlowSection{Entries: []domain.ClassifiedTransaction{}, Total: decimal.Zero},
		Financing: domain.CashFlowSection{Entries: []domain.ClassifiedTransaction{}, Total: decimal.Zero},
	}

	seenUnmapped := make(map[string]struct{})

	for _, txn := range transactions {
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}

		entry, ok := categoryMap[txn.AccountCode]
		if !ok {
			report.ExcludedCount++
			if _, seen := seenUnmapped[txn.AccountCode]; !seen {
				seenUnmapped[txn.AccountCode] = struct{}{}
				report.UnmappedAccountCodes = append(report.UnmappedAccountCodes, txn.AccountCode)
			}
			continue
		}

		classified := domain.ClassifiedTransaction{
			Transaction:      txn,
			ActivityCategory: entry.ActivityCategory,
			Subcategory:      entry.Subcategory,
			SignedCash:       txn.SignedAmount(),
		}

		var section *domain.CashFlowSection
		switch entry.ActivityCategory {
		case domain.Operating:
			section = &report.Operating
		case domain.Investing:
			section = &report.Investing
		case domain.Financing:
			section = &report.Financing
		default:
			// Data integrity issue in the category map; exclude and count
			// like an unmapped code rather than inventing a bucket.
			report.ExcludedCount++
			if _, seen := seenUnmapped[txn.AccountCode]; !seen {
				seenUnmapped[txn.AccountCode] = struct{}{}
				report.UnmappedAccountCodes = append(report.UnmappedAccountCodes, txn.AccountCode)
			}
			continue
		}

		section.Entries = append(section.Entries, classified)
		section.Total = section.Total.Add(classified.SignedCash)
	}

	report.NetCashFlow = report.Operating.Total.Add(report.Investing.Total).Add(report.Financing.Total)
	return report
}

// Report classifies all ledger transactions dated within [from, to].
func (s *cashFlowService) Report(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	entries, err := s.categoryRepo.ListCategoryEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash-flow category map: %w", err)
	}

	categoryMap := make(map[string]domain.CashFlowCategoryEntry, len(entries))
	for _, entry := range entries {
		categoryMap[entry.AccountCode] = entry
	}

	transactions, err := s.transactionRepo.ListTransactions(ctx, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	report := ClassifyTransactions(transactions, categoryMap, from, to)

	if report.ExcludedCount > 0 {
		s.LogWarn(ctx, "Transactions excluded from cash-flow report: unmapped account codes",
			"excluded_count", report.ExcludedCount,
			"unmapped_codes", report.UnmappedAccountCodes)
	}

	s.LogInfo(ctx, "Cash-flow report generated",
		"operating", len(report.Operating.Entries),
		"investing", len(report.Investing.Entries),
		"financing", len(report.Financing.Entries),
		"net", report.NetCashFlow.String())
	return report, nil
}
