package shared

import "github.com/ramani-fashion/api/internal/constants"

// NormalizePagination clamps page/limit to sane bounds.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return page, limit
}
