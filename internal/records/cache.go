package records

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/creator"
)

// keyPrefix is the cache namespace for this owner and application. Every
// list key starts with it, which is what lets invalidate drop all cached
// pages in one pass.
func (s *Service) keyPrefix() string {
	return fmt.Sprintf("records/%s/%s/", s.api.Owner(), s.api.App())
}

// cacheKey derives a stable cache key for one page of a report listing.
func (s *Service) cacheKey(report string, opts creator.ListOptions) string {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	key := fmt.Sprintf("%s%s/%s/p%d", s.keyPrefix(), report, opts.Criteria, page)
	if opts.PageSize > 0 {
		key += fmt.Sprintf("x%d", opts.PageSize)
	}
	return key
}
