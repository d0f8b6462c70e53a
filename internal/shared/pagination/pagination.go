package pagination

import (
	"math"
	"strings"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultSortBy = "createdAt"

	OrderAsc  = "asc"
	OrderDesc = "desc"

	// MaxPage keeps (page-1)*limit inside an int for any limit up to MaxLimit
	MaxPage = math.MaxInt / MaxLimit
)

// Params is the shared pagination/filter/sort contract of the list queries
type Params struct {
	Page       int
	Limit      int
	SortBy     string
	Order      string
	Title      string // books only
	AuthorName string // books only
}

// Normalize fills defaults and clamps values.
// allowedSort is the per-aggregate whitelist; an unknown SortBy falls back to createdAt.
func (p Params) Normalize(allowedSort ...string) Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	if strings.ToLower(p.Order) == OrderDesc {
		p.Order = OrderDesc
	} else {
		p.Order = OrderAsc
	}

	if !contains(allowedSort, p.SortBy) {
		p.SortBy = DefaultSortBy
	}

	p.Title = strings.TrimSpace(p.Title)
	p.AuthorName = strings.TrimSpace(p.AuthorName)
	return p
}

// Skip is the offset of the first record of the page: (page-1) * limit.
// It saturates at math.MaxInt instead of wrapping.
func (p Params) Skip() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

func (p Params) Descending() bool {
	return p.Order == OrderDesc
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
