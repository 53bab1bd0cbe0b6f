//go:build unit

package otp_test

import (
	"testing"
	"time"

	"trust-rewards/internal/domain/otp"
	"trust-rewards/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := otp.GenerateCode()
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", code)
	}
}

func TestChallenge_Verify(t *testing.T) {
	issuedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	newChallenge := func(t *testing.T) *otp.Challenge {
		t.Helper()
		c, err := builder.NewChallengeBuilder().With(func(b *builder.ChallengeBuilder) {
			b.IssuedAt = issuedAt
		}).BuildDomain()
		require.NoError(t, err)
		return c
	}

	t.Run("correct code mints a token and consumes the challenge", func(t *testing.T) {
		c := newChallenge(t)

		token, err := c.Verify("123456", issuedAt.Add(time.Minute))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, token)
		assert.True(t, c.IsUsed())
		require.NotNil(t, c.VerificationToken())
		assert.Equal(t, token, *c.VerificationToken())
		require.NotNil(t, c.VerifiedAt())
	})

	t.Run("second verification fails even with the correct code", func(t *testing.T) {
		c := newChallenge(t)

		_, err := c.Verify("123456", issuedAt.Add(time.Minute))
		require.NoError(t, err)

		_, err = c.Verify("123456", issuedAt.Add(2*time.Minute))
		require.ErrorIs(t, err, otp.ErrAlreadyUsed)
	})

	t.Run("wrong code is rejected and does not consume", func(t *testing.T) {
		c := newChallenge(t)

		_, err := c.Verify("000000", issuedAt.Add(time.Minute))
		require.ErrorIs(t, err, otp.ErrCodeMismatch)
		assert.False(t, c.IsUsed())

		// still verifiable afterwards
		_, err = c.Verify("123456", issuedAt.Add(2*time.Minute))
		require.NoError(t, err)
	})

	t.Run("expired challenge is rejected", func(t *testing.T) {
		c := newChallenge(t)

		_, err := c.Verify("123456", issuedAt.Add(5*time.Minute+time.Second))
		require.ErrorIs(t, err, otp.ErrExpired)
	})

	t.Run("verification at the exact expiry instant succeeds", func(t *testing.T) {
		c := newChallenge(t)

		_, err := c.Verify("123456", issuedAt.Add(5*time.Minute))
		require.NoError(t, err)
	})
}

func TestChallenge_TokenValidAt(t *testing.T) {
	issuedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tokenTTL := 10 * time.Minute

	c, err := builder.NewChallengeBuilder().With(func(b *builder.ChallengeBuilder) {
		b.IssuedAt = issuedAt
	}).BuildDomain()
	require.NoError(t, err)

	t.Run("unverified challenge has no valid token", func(t *testing.T) {
		assert.False(t, c.TokenValidAt(issuedAt, tokenTTL))
	})

	verifiedAt := issuedAt.Add(time.Minute)
	_, err = c.Verify("123456", verifiedAt)
	require.NoError(t, err)

	t.Run("token valid inside the window", func(t *testing.T) {
		assert.True(t, c.TokenValidAt(verifiedAt.Add(9*time.Minute), tokenTTL))
	})

	t.Run("token valid at the window boundary", func(t *testing.T) {
		assert.True(t, c.TokenValidAt(verifiedAt.Add(tokenTTL), tokenTTL))
	})

	t.Run("token stale past the window", func(t *testing.T) {
		assert.False(t, c.TokenValidAt(verifiedAt.Add(tokenTTL+time.Second), tokenTTL))
	})
}

func TestMaskMobile(t *testing.T) {
	testCases := []struct {
		name   string
		mobile string
		want   string
	}{
		{name: "standard ten digit number", mobile: "9876543210", want: "******3210"},
		{name: "number with country code", mobile: "+919876543210", want: "******3210"},
		{name: "exactly four digits", mobile: "3210", want: "******3210"},
		{name: "too short to mask", mobile: "321", want: "321"},
		{name: "empty", mobile: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, otp.MaskMobile(tc.mobile))
		})
	}
}
