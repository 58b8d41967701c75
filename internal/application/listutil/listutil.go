package listutil

import (
	"net/url"
	"strconv"
)

// PageParams carries pagination parameters parsed from a request.
type PageParams struct {
	Page    int // 1-indexed page number
	PerPage int // rows per page
}

// BrowseParams carries the browse panel's query parameters. Search and
// category pass through to the backend fetch; paging is applied locally to
// the returned list, which the backend sends whole.
type BrowseParams struct {
	PageParams
	Search   string
	Category string
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int // current page (1-indexed)
	PerPage    int // rows per page
	Total      int // total matching rows
	TotalPages int // ceil(Total / PerPage)
}

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 12

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{6, 12, 24, 48}

// ParsePageParams extracts page and per_page from URL query values.
// PRE: none
// POST: returns valid PageParams with defaults applied
func ParsePageParams(q url.Values) PageParams {
	page, _ := strconv.Atoi(q.Get("p"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if !isValidPerPage(perPage) {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// ParseBrowseParams parses the full browse query. The panel selector owns
// the `page` parameter, so pagination uses `p`.
func ParseBrowseParams(q url.Values) BrowseParams {
	return BrowseParams{
		PageParams: ParsePageParams(q),
		Search:     q.Get("q"),
		Category:   q.Get("category"),
	}
}

// NewPageInfo computes pagination metadata.
// PRE: total >= 0
// POST: returns PageInfo with TotalPages computed; Page clamped to valid range
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Paginate slices one page out of a wholly fetched list.
// POST: returned slice aliases items; PageInfo reflects the clamped page
func Paginate[T any](items []T, p PageParams) ([]T, PageInfo) {
	info := NewPageInfo(p.Page, p.PerPage, len(items))
	start := (info.Page - 1) * info.PerPage
	if start > len(items) {
		start = len(items)
	}
	end := start + info.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], info
}

func isValidPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}
