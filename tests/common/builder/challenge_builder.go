//go:build unit || e2e

package builder

import (
	"time"

	"trust-rewards/internal/domain/otp"

	"github.com/google/uuid"
)

type ChallengeBuilder struct {
	WorkerID  uuid.UUID
	Purpose   string
	PlainCode string
	Mobile    string
	IssuedAt  time.Time
	TTL       time.Duration
}

func NewChallengeBuilder() *ChallengeBuilder {
	return &ChallengeBuilder{
		WorkerID:  uuid.New(),
		Purpose:   otp.PurposeGiftRedemption,
		PlainCode: "123456",
		Mobile:    "9876543210",
		IssuedAt:  time.Now(),
		TTL:       5 * time.Minute,
	}
}

func (b *ChallengeBuilder) With(mutate func(*ChallengeBuilder)) *ChallengeBuilder {
	mutate(b)
	return b
}

func (b *ChallengeBuilder) BuildDomain() (*otp.Challenge, error) {
	return otp.NewChallenge(b.WorkerID, b.Purpose, b.PlainCode, b.Mobile, b.IssuedAt, b.TTL)
}
