package memory

import "library-backend/internal/shared/pagination"

// page slices an already sorted result set: skip (page-1)*limit, take limit
func page[T any](items []T, params pagination.Params) []T {
	skip := params.Skip()
	if skip < 0 || skip >= len(items) {
		return []T{}
	}
	end := skip + params.Limit
	if params.Limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
