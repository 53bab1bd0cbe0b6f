package response

import "trust-rewards/internal/usecase/queries"

type RedemptionListResponse struct {
	ListResponse[*queries.RedemptionListItem]
	Stats *queries.RedemptionStats `json:"stats"`
}
