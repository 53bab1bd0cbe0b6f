package queries

// PageRequest is the offset pagination input shared by every list endpoint.
type PageRequest struct {
	Page    int
	PerPage int
}

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

func (p PageRequest) Limit() int32 {
	return int32(p.PerPage)
}

func (p PageRequest) Offset() int32 {
	return int32((p.Page - 1) * p.PerPage)
}

// Pagination echoes the request back with totals so clients can render pagers
// without a second count call.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(req PageRequest, total int64) Pagination {
	pages := int(total) / req.PerPage
	if int(total)%req.PerPage != 0 {
		pages++
	}
	return Pagination{
		Page:       req.Page,
		PerPage:    req.PerPage,
		Total:      total,
		TotalPages: pages,
	}
}
