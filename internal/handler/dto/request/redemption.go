package request

import (
	"github.com/google/uuid"
)

type VerifyOTPRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id" binding:"required"`
	Code        string    `json:"code" binding:"required,len=6,numeric"`
}

type RedeemRequest struct {
	GiftID            uuid.UUID `json:"gift_id" binding:"required"`
	VerificationToken uuid.UUID `json:"verification_token" binding:"required"`
}

type ChangeRedemptionStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=approved redeemed cancelled"`
	Comment string `json:"comment,omitempty" binding:"max=500"`
}
