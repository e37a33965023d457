package domain

// Pagination describes one page of an offset-paginated listing.
type Pagination struct {
	TotalItems  int
	TotalPages  int
	CurrentPage int
	Limit       int
}

// NewPagination computes page metadata. totalPages = ceil(total/limit);
// zero items yields zero pages.
func NewPagination(totalItems, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}
}

// Offset returns the number of rows to skip for a 1-based page.
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
