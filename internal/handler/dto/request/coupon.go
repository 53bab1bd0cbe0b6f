package request

import (
	"strings"
	"time"
)

type ScanCouponsRequest struct {
	Codes []string `json:"codes" binding:"required,min=1,max=50,dive,min=1"`
}

// NormalizedCodes trims whitespace and drops empties so a sloppy client
// payload does not burn per-code transactions on blanks.
func (r ScanCouponsRequest) NormalizedCodes() []string {
	codes := make([]string, 0, len(r.Codes))
	for _, code := range r.Codes {
		trimmed := strings.TrimSpace(code)
		if trimmed != "" {
			codes = append(codes, trimmed)
		}
	}
	return codes
}

type GenerateBatchRequest struct {
	BatchNumber     string    `json:"batch_number,omitempty"`
	PointsPerCoupon int64     `json:"points_per_coupon" binding:"required,min=1,max=10000"`
	TotalCoupons    int       `json:"total_coupons" binding:"required,min=1,max=1000"`
	ValidFrom       time.Time `json:"valid_from" binding:"required"`
	ValidTo         time.Time `json:"valid_to" binding:"required"`
}
