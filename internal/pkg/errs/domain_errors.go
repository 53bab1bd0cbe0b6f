package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Worker errors
	ErrWorkerNotFound  = errors.New("worker not found")
	ErrAccountInactive = errors.New("worker account is not active")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrAlreadyScanned = errors.New("coupon already scanned")
	ErrCouponInactive = errors.New("coupon is not active")
	ErrCouponExpired  = errors.New("coupon outside validity window")
	ErrDuplicateBatch = errors.New("duplicate batch number")

	// Gift / redemption errors
	ErrGiftNotFound        = errors.New("gift not found")
	ErrRedemptionNotFound  = errors.New("redemption not found")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotRequestOwner     = errors.New("redemption belongs to another worker")

	// OTP errors
	ErrOTPNotFound             = errors.New("otp challenge not found")
	ErrOTPExpired              = errors.New("otp expired")
	ErrInvalidOTP              = errors.New("invalid otp")
	ErrOTPVerificationRequired = errors.New("otp verification required")
	ErrOTPVerificationExpired  = errors.New("otp verification expired")

	// Validation errors
	ErrValidation = errors.New("validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
