//go:build unit

package redemption_test

import (
	"testing"
	"time"

	"trust-rewards/internal/domain/redemption"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	workerID := uuid.New()
	giftID := uuid.New()
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		req, err := redemption.New("RED-2025-001", workerID, giftID, 300, now)
		require.NoError(t, err)
		require.NotNil(t, req)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, "RED-2025-001", req.Code())
		assert.Equal(t, workerID, req.WorkerID())
		assert.Equal(t, giftID, req.GiftID())
		assert.Equal(t, int64(300), req.PointsUsed())
		assert.Equal(t, redemption.StatusPending, req.Status())
	})

	t.Run("zero points rejected", func(t *testing.T) {
		_, err := redemption.New("RED-2025-002", workerID, giftID, 0, now)
		require.ErrorIs(t, err, redemption.ErrInvalidPointsUsed)
	})

	t.Run("negative points rejected", func(t *testing.T) {
		_, err := redemption.New("RED-2025-003", workerID, giftID, -10, now)
		require.ErrorIs(t, err, redemption.ErrInvalidPointsUsed)
	})
}

func TestRequest_ValidateWorkerCancel(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	now := time.Now()

	testCases := []struct {
		name     string
		status   redemption.Status
		workerID uuid.UUID
		errIs    error
	}{
		{name: "owner cancels pending", status: redemption.StatusPending, workerID: owner},
		{name: "another worker cannot cancel", status: redemption.StatusPending, workerID: stranger, errIs: redemption.ErrNotOwner},
		{name: "approved cannot be worker-cancelled", status: redemption.StatusApproved, workerID: owner, errIs: redemption.ErrNotCancellable},
		{name: "redeemed cannot be worker-cancelled", status: redemption.StatusRedeemed, workerID: owner, errIs: redemption.ErrNotCancellable},
		{name: "cancelled cannot be cancelled again", status: redemption.StatusCancelled, workerID: owner, errIs: redemption.ErrNotCancellable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := redemption.Reconstruct(uuid.New(), "RED-2025-010", owner, uuid.New(), 300, tc.status, now)

			err := req.ValidateWorkerCancel(tc.workerID)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("ownership is checked before status", func(t *testing.T) {
		req := redemption.Reconstruct(uuid.New(), "RED-2025-011", owner, uuid.New(), 300, redemption.StatusRedeemed, now)
		require.ErrorIs(t, req.ValidateWorkerCancel(stranger), redemption.ErrNotOwner)
	})
}
