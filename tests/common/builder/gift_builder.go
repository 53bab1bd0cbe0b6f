//go:build unit || e2e

package builder

import (
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type GiftBuilder struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Category       string
	PointsRequired int64
	Status         string
}

func NewGiftBuilder() *GiftBuilder {
	return &GiftBuilder{
		ID:             uuid.New(),
		Name:           "Steel Water Bottle",
		Description:    "1L insulated bottle",
		Category:       "utility",
		PointsRequired: 300,
		Status:         "active",
	}
}

func (b *GiftBuilder) With(mutate func(*GiftBuilder)) *GiftBuilder {
	mutate(b)
	return b
}

func (b *GiftBuilder) BuildSnapshot() *shared.GiftSnapshot {
	return &shared.GiftSnapshot{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Category:       b.Category,
		PointsRequired: b.PointsRequired,
		Status:         b.Status,
	}
}
