package otp

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrExpired       = errors.New("otp expired")
	ErrCodeMismatch  = errors.New("otp code does not match")
	ErrAlreadyUsed   = errors.New("otp already used")
	ErrNotVerified   = errors.New("challenge has not been verified")
	ErrHashingFailed = errors.New("otp hashing failed")
)

const (
	PurposeGiftRedemption = "gift_redemption"

	codeLength = 6
)

// GenerateCode returns a random numeric code of the standard length.
func GenerateCode() (string, error) {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// Challenge is a short-lived one-time code gating a sensitive action. The
// code is kept only as a bcrypt hash; a successful verification mints the
// verification token the redemption path consumes.
type Challenge struct {
	id                uuid.UUID
	workerID          uuid.UUID
	purpose           string
	codeHash          string
	mobile            string
	expiresAt         time.Time
	isUsed            bool
	verificationToken *uuid.UUID
	verifiedAt        *time.Time
}

func NewChallenge(workerID uuid.UUID, purpose, plainCode, mobile string, issuedAt time.Time, ttl time.Duration) (*Challenge, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}
	return &Challenge{
		id:        uuid.New(),
		workerID:  workerID,
		purpose:   purpose,
		codeHash:  string(hash),
		mobile:    mobile,
		expiresAt: issuedAt.Add(ttl),
	}, nil
}

func Reconstruct(
	id, workerID uuid.UUID,
	purpose, codeHash, mobile string,
	expiresAt time.Time,
	isUsed bool,
	verificationToken *uuid.UUID,
	verifiedAt *time.Time,
) *Challenge {
	return &Challenge{
		id:                id,
		workerID:          workerID,
		purpose:           purpose,
		codeHash:          codeHash,
		mobile:            mobile,
		expiresAt:         expiresAt,
		isUsed:            isUsed,
		verificationToken: verificationToken,
		verifiedAt:        verifiedAt,
	}
}

func (c *Challenge) ID() uuid.UUID                 { return c.id }
func (c *Challenge) WorkerID() uuid.UUID           { return c.workerID }
func (c *Challenge) Purpose() string               { return c.purpose }
func (c *Challenge) CodeHash() string              { return c.codeHash }
func (c *Challenge) Mobile() string                { return c.mobile }
func (c *Challenge) ExpiresAt() time.Time          { return c.expiresAt }
func (c *Challenge) IsUsed() bool                  { return c.isUsed }
func (c *Challenge) VerificationToken() *uuid.UUID { return c.verificationToken }
func (c *Challenge) VerifiedAt() *time.Time        { return c.verifiedAt }

func (c *Challenge) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

// Verify consumes the challenge: at most one call can succeed. The returned
// token is what the redemption state machine later checks.
func (c *Challenge) Verify(submittedCode string, now time.Time) (uuid.UUID, error) {
	if c.isUsed {
		return uuid.Nil, ErrAlreadyUsed
	}
	if c.IsExpired(now) {
		return uuid.Nil, ErrExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(c.codeHash), []byte(submittedCode)) != nil {
		return uuid.Nil, ErrCodeMismatch
	}

	token := uuid.New()
	c.isUsed = true
	c.verificationToken = &token
	verifiedAt := now
	c.verifiedAt = &verifiedAt
	return token, nil
}

// TokenValidAt reports whether the minted token still authorizes a redemption.
func (c *Challenge) TokenValidAt(now time.Time, tokenTTL time.Duration) bool {
	if !c.isUsed || c.verificationToken == nil || c.verifiedAt == nil {
		return false
	}
	return now.Sub(*c.verifiedAt) <= tokenTTL
}

// MaskMobile keeps the last four digits visible: "******7890".
func MaskMobile(mobile string) string {
	if len(mobile) < 4 {
		return mobile
	}
	return strings.Repeat("*", 6) + mobile[len(mobile)-4:]
}
