package response

import "trust-rewards/internal/usecase/queries"

// ListResponse is the envelope for every paginated collection.
type ListResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination queries.Pagination `json:"pagination"`
}

func NewListResponse[T any](data []T, p queries.Pagination) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Pagination: p}
}
