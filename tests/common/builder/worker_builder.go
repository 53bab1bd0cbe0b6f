//go:build unit || e2e

package builder

import (
	"time"

	"trust-rewards/internal/domain/worker"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type WorkerBuilder struct {
	ID             uuid.UUID
	Name           string
	Mobile         string
	WorkerType     string
	Status         worker.Status
	WalletBalance  int64
	CouponsScanned int
	LastActivityAt *time.Time
}

func NewWorkerBuilder() *WorkerBuilder {
	return &WorkerBuilder{
		ID:            uuid.New(),
		Name:          "Ramesh Kumar",
		Mobile:        "9876543210",
		WorkerType:    "carpenter",
		Status:        worker.StatusActive,
		WalletBalance: 500,
	}
}

func (b *WorkerBuilder) With(mutate func(*WorkerBuilder)) *WorkerBuilder {
	mutate(b)
	return b
}

func (b *WorkerBuilder) BuildDomain() *worker.Worker {
	return worker.Reconstruct(
		b.ID, b.Name, b.Mobile, b.WorkerType,
		b.Status, b.WalletBalance, b.CouponsScanned, b.LastActivityAt,
	)
}

func (b *WorkerBuilder) BuildSnapshot() *shared.WorkerSnapshot {
	return &shared.WorkerSnapshot{
		ID:             b.ID,
		Name:           b.Name,
		Mobile:         b.Mobile,
		WorkerType:     b.WorkerType,
		Status:         b.Status,
		WalletBalance:  b.WalletBalance,
		CouponsScanned: b.CouponsScanned,
		LastActivityAt: b.LastActivityAt,
	}
}
