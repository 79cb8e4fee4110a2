package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soildynamics/geoledger/internal/core/domain"
	portsrepo "github.com/soildynamics/geoledger/internal/core/ports/repositories"
	"github.com/soildynamics/geoledger/internal/utils/pagination"
)

type transactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new repository for ledger reads.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &transactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*transactionRepository)(nil)

const transactionColumns = `transaction_id, date, entry_type, flow_tag, account_code, amount, project_id, description, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.Date,
		&txn.EntryType,
		&txn.FlowTag,
		&txn.AccountCode,
		&txn.Amount,
		&txn.ProjectID,
		&txn.Description,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListTransactions returns transactions dated within [from, to]. A nil
// bound is open-ended.
func (r *transactionRepository) ListTransactions(ctx context.Context, from, to *time.Time) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions`, transactionColumns)
	args := []any{}
	conditions := ""

	if from != nil {
		args = append(args, *from)
		conditions += fmt.Sprintf(" WHERE date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if conditions == "" {
			conditions += fmt.Sprintf(" WHERE date <= $%d", len(args))
		} else {
			conditions += fmt.Sprintf(" AND date <= $%d", len(args))
		}
	}

	query += conditions + " ORDER BY date, created_at;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return transactions, nil
}

// ListTransactionsByAccountCode returns a page of transactions for one
// account, newest first, keyed by (date, created_at) in the opaque token.
func (r *transactionRepository) ListTransactionsByAccountCode(ctx context.Context, accountCode string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE account_code = $1`, transactionColumns)
	args := []any{accountCode}

	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", err)
		}
		args = append(args, txnDate, createdAt)
		query += fmt.Sprintf(" AND (date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to know whether a further page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for account %s: %w", accountCode, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row for account %s: %w", accountCode, err)
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows for account %s: %w", accountCode, err)
	}

	var token *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[len(transactions)-1]
		encoded := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &encoded
	}

	return transactions, token, nil
}
