package readstore

import (
	"context"
	"fmt"
	"strings"

	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(dbtx db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: dbtx}
}

func ledgerFilterClause(filter queries.LedgerFilter) (string, []any) {
	conds := []string{"1=1"}
	var args []any

	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		conds = append(conds, fmt.Sprintf("l.worker_id = $%d", len(args)))
	}
	if filter.EntryType != nil {
		args = append(args, *filter.EntryType)
		conds = append(conds, fmt.Sprintf("l.entry_type = $%d::ledger_entry_type", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("l.created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("l.created_at <= $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

func (r *LedgerReadStore) FindPage(ctx context.Context, filter queries.LedgerFilter, limit, offset int32) ([]*queries.LedgerEntryView, error) {
	where, args := ledgerFilterClause(filter)
	q := fmt.Sprintf(`
		SELECT l.id, l.code, l.worker_id, w.name, l.entry_type, l.amount,
		       l.previous_balance, l.new_balance, l.description,
		       l.reference_type, l.reference_id, l.created_at
		FROM ledger_entries l
		JOIN workers w ON w.id = l.worker_id
		WHERE %s
		ORDER BY l.created_at DESC, l.id
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}
	defer rows.Close()

	var views []*queries.LedgerEntryView
	for rows.Next() {
		var v queries.LedgerEntryView
		if err := rows.Scan(
			&v.ID, &v.Code, &v.WorkerID, &v.WorkerName, &v.EntryType, &v.Amount,
			&v.PreviousBalance, &v.NewBalance, &v.Description,
			&v.ReferenceType, &v.ReferenceID, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger entry row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger entries", err)
	}
	return views, nil
}

func (r *LedgerReadStore) Count(ctx context.Context, filter queries.LedgerFilter) (int64, error) {
	where, args := ledgerFilterClause(filter)
	q := fmt.Sprintf(`SELECT count(*) FROM ledger_entries l WHERE %s`, where)

	var total int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count ledger entries", err)
	}
	return total, nil
}

func (r *LedgerReadStore) Aggregate(ctx context.Context, filter queries.LedgerFilter) (*queries.LedgerSummary, error) {
	where, args := ledgerFilterClause(filter)
	q := fmt.Sprintf(`
		SELECT l.entry_type,
		       coalesce(sum(l.amount) FILTER (WHERE l.amount > 0), 0),
		       coalesce(sum(-l.amount) FILTER (WHERE l.amount < 0), 0),
		       count(*)
		FROM ledger_entries l
		WHERE %s
		GROUP BY l.entry_type`, where)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate ledger entries", err)
	}
	defer rows.Close()

	summary := &queries.LedgerSummary{EntriesByType: map[string]int64{}}
	for rows.Next() {
		var (
			entryType         string
			credited, debited int64
			count             int64
		)
		if err := rows.Scan(&entryType, &credited, &debited, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger aggregate row", err)
		}
		summary.TotalCredited += credited
		summary.TotalDebited += debited
		summary.EntriesByType[entryType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger aggregates", err)
	}
	return summary, nil
}

func (r *LedgerReadStore) WalletTotals(ctx context.Context, workerID uuid.UUID) (*queries.WalletTotals, error) {
	const q = `
		SELECT coalesce(sum(amount) FILTER (WHERE amount > 0), 0),
		       coalesce(sum(-amount) FILTER (WHERE amount < 0), 0)
		FROM ledger_entries
		WHERE worker_id = $1`

	var t queries.WalletTotals
	if err := r.db.QueryRow(ctx, q, workerID).Scan(&t.TotalEarned, &t.TotalRedeemed); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate wallet totals", err)
	}
	return &t, nil
}

func (r *LedgerReadStore) Recent(ctx context.Context, workerID uuid.UUID, limit int32) ([]*queries.LedgerEntryView, error) {
	id := workerID
	return r.FindPage(ctx, queries.LedgerFilter{WorkerID: &id}, limit, 0)
}

func (r *LedgerReadStore) SumAmounts(ctx context.Context, workerID uuid.UUID) (int64, error) {
	const q = `SELECT coalesce(sum(amount), 0) FROM ledger_entries WHERE worker_id = $1`

	var sum int64
	if err := r.db.QueryRow(ctx, q, workerID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum ledger amounts", err)
	}
	return sum, nil
}
