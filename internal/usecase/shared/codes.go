package shared

import (
	"context"
	"fmt"
	"time"

	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/pkg/clock"
)

// Entity/prefix pairs minted through the sequence counter.
const (
	EntityRedemption = "redemption"
	PrefixRedemption = "RED"

	EntityLedger = "ledger"
	PrefixLedger = "TXN"

	EntityCouponBatch = "coupon_batch"
	PrefixCouponBatch = "CPB"
)

const sequenceDigits = 3

// CodeGenerator mints human-readable codes "PREFIX-YEAR-NNN" from a per
// (entityType, prefix, year) counter. Uniqueness rests entirely on the
// repository's atomic increment; two concurrent calls can never see the same
// sequence value.
type CodeGenerator struct {
	sequences SequenceRepository
	clock     clock.Clock
}

func NewCodeGenerator(sequences SequenceRepository, clock clock.Clock) *CodeGenerator {
	return &CodeGenerator{sequences: sequences, clock: clock}
}

func (g *CodeGenerator) NextCode(ctx context.Context, db db.DBTX, entityType, prefix string) (string, error) {
	return g.NextCodeAt(ctx, db, entityType, prefix, g.clock.Now())
}

func (g *CodeGenerator) NextCodeAt(ctx context.Context, db db.DBTX, entityType, prefix string, at time.Time) (string, error) {
	year := at.Year()
	key := fmt.Sprintf("%s_%s_%d", entityType, prefix, year)

	seq, err := g.sequences.Next(ctx, db, key)
	if err != nil {
		return "", err
	}

	// %0*d pads to three digits and widens naturally past 999.
	return fmt.Sprintf("%s-%d-%0*d", prefix, year, sequenceDigits, seq), nil
}
