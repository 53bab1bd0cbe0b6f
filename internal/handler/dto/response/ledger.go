package response

import "trust-rewards/internal/usecase/queries"

type LedgerListResponse struct {
	ListResponse[*queries.LedgerEntryView]
	Summary *queries.LedgerSummary `json:"summary"`
}
