package request

type AdjustWalletRequest struct {
	// Amount is signed: positive credits, negative debits. Zero is rejected.
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}
