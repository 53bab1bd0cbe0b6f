package repository

import (
	"context"

	"trust-rewards/internal/domain/ledger"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"
)

type LedgerRepository struct{}

func NewLedgerRepository() shared.LedgerRepository {
	return &LedgerRepository{}
}

// Append inserts the entry exactly as the domain built it. The table's
// balance-arithmetic CHECK rejects anything a bug might slip past NewEntry.
func (r *LedgerRepository) Append(ctx context.Context, dbtx db.DBTX, entry *ledger.Entry) error {
	const q = `
		INSERT INTO ledger_entries (
			id, code, worker_id, entry_type, amount,
			previous_balance, new_balance, description,
			reference_type, reference_id, created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	if _, err := dbtx.Exec(ctx, q,
		entry.ID, entry.Code, entry.WorkerID, entry.Type.String(), entry.Amount,
		entry.PreviousBalance, entry.NewBalance, entry.Description,
		entry.ReferenceType, entry.ReferenceID, entry.CreatedBy, entry.CreatedAt,
	); err != nil {
		return infra.WrapRepoErr("failed to append ledger entry", err)
	}
	return nil
}
