// Package records provides the record service layer.
//
// The Service type wraps the Creator client and adds link name validation,
// response caching, and draft persistence before delegating to the API.
// CLI commands construct a Service from the resolved configuration and call
// service methods rather than using the client directly.
package records

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/draftstore"
	"github.com/pgrowth/tppgUtil/internal/swrcache"
	"github.com/pgrowth/tppgUtil/internal/util"
)

// listAllParallelism caps how many pages ListAll requests at once.
const listAllParallelism = 4

// API is the subset of the Creator client the service depends on.
type API interface {
	Owner() string
	App() string
	ListRecords(ctx context.Context, report string, opts creator.ListOptions) ([]creator.Record, error)
	GetRecord(ctx context.Context, report, id string) (creator.Record, error)
	CreateRecord(ctx context.Context, form string, data creator.Record) (string, error)
	UpdateRecord(ctx context.Context, report, id string, data creator.Record) error
	DeleteRecord(ctx context.Context, report, id string) error
}

var _ API = (*creator.Client)(nil)

// Service is the record business logic layer. It sits between CLI commands
// and the Creator API, applying validation and bookkeeping to all inputs.
type Service struct {
	api    API
	cache  *swrcache.Cache
	drafts draftstore.Repository

	// pageSize is how many records ListAll requests per page.
	pageSize int
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables stale-while-revalidate caching for list operations.
func WithCache(cache *swrcache.Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithDrafts enables local draft persistence for create operations.
func WithDrafts(drafts draftstore.Repository) Option {
	return func(s *Service) {
		s.drafts = drafts
	}
}

// New returns a Service backed by the given API.
func New(api API, opts ...Option) *Service {
	svc := &Service{api: api, pageSize: creator.MaxPageSize}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// List returns one page of records from a report.
func (s *Service) List(ctx context.Context, report string, opts creator.ListOptions) ([]creator.Record, error) {
	if err := util.ValidateLinkName(report); err != nil {
		return nil, fmt.Errorf("invalid report %q: %w", report, err)
	}
	return s.list(ctx, report, opts)
}

// list fetches a page through the cache when one is configured. Inputs are
// assumed validated.
func (s *Service) list(ctx context.Context, report string, opts creator.ListOptions) ([]creator.Record, error) {
	if s.cache == nil {
		return s.api.ListRecords(ctx, report, opts)
	}

	key := s.cacheKey(report, opts)
	return swrcache.GetOrFetch(s.cache, ctx, key, func(ctx context.Context) ([]creator.Record, error) {
		return s.api.ListRecords(ctx, report, opts)
	})
}

// ListAll returns every record in a report matching the criteria. The first
// page is probed directly; remaining pages are fetched in waves of
// listAllParallelism until a short page signals the end. Page order is
// preserved in the result.
func (s *Service) ListAll(ctx context.Context, report, criteria string) ([]creator.Record, error) {
	if err := util.ValidateLinkName(report); err != nil {
		return nil, fmt.Errorf("invalid report %q: %w", report, err)
	}

	first, err := s.list(ctx, report, creator.ListOptions{Criteria: criteria, Page: 1, PageSize: s.pageSize})
	if err != nil {
		return nil, err
	}
	all := first
	if len(first) < s.pageSize {
		return all, nil
	}

	for page := 2; ; page += listAllParallelism {
		batch := make([][]creator.Record, listAllParallelism)
		g, gctx := errgroup.WithContext(ctx)
		for i := range listAllParallelism {
			p := page + i
			g.Go(func() error {
				recs, err := s.list(gctx, report, creator.ListOptions{Criteria: criteria, Page: p, PageSize: s.pageSize})
				if err != nil {
					return fmt.Errorf("failed to fetch page %d: %w", p, err)
				}
				batch[i] = recs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		done := false
		for _, recs := range batch {
			all = append(all, recs...)
			if len(recs) < s.pageSize {
				done = true
				break
			}
		}
		if done {
			return all, nil
		}
	}
}

// Refresh drops any cached pages for the application and refetches the
// report, so the result reflects remote changes made since the last
// fetch. The record browser uses it for explicit reloads.
func (s *Service) Refresh(ctx context.Context, report, criteria string) ([]creator.Record, error) {
	s.invalidate()
	return s.ListAll(ctx, report, criteria)
}

// Get returns a single record from a report by ID.
func (s *Service) Get(ctx context.Context, report, id string) (creator.Record, error) {
	if err := util.ValidateLinkName(report); err != nil {
		return nil, fmt.Errorf("invalid report %q: %w", report, err)
	}
	if id == "" {
		return nil, fmt.Errorf("record ID is required")
	}
	return s.api.GetRecord(ctx, report, id)
}

// Create submits field data to a form and returns the new record's ID.
// When a draft store is configured the payload is persisted before the
// request goes out, so an interrupted submission can be resumed later.
func (s *Service) Create(ctx context.Context, form string, data creator.Record) (string, error) {
	if err := util.ValidateLinkName(form); err != nil {
		return "", fmt.Errorf("invalid form %q: %w", form, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("record data is required")
	}

	draft, err := s.saveDraft(form, data)
	if err != nil {
		return "", err
	}

	id, err := s.api.CreateRecord(ctx, form, data)
	s.settleDraft(draft, id, err)
	if err != nil {
		return "", err
	}

	s.invalidate()
	return id, nil
}

// Update overwrites the given fields of a record. Fields absent from data
// keep their current values.
func (s *Service) Update(ctx context.Context, report, id string, data creator.Record) error {
	if err := util.ValidateLinkName(report); err != nil {
		return fmt.Errorf("invalid report %q: %w", report, err)
	}
	if id == "" {
		return fmt.Errorf("record ID is required")
	}
	if len(data) == 0 {
		return fmt.Errorf("record data is required")
	}

	if err := s.api.UpdateRecord(ctx, report, id, data); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Delete removes a record from a report by ID.
func (s *Service) Delete(ctx context.Context, report, id string) error {
	if err := util.ValidateLinkName(report); err != nil {
		return fmt.Errorf("invalid report %q: %w", report, err)
	}
	if id == "" {
		return fmt.Errorf("record ID is required")
	}

	if err := s.api.DeleteRecord(ctx, report, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// invalidate drops cached list pages for the whole application. Records
// can surface in any report, so mutations invalidate broadly rather than
// tracking which reports display which forms.
func (s *Service) invalidate() {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidatePrefix(s.keyPrefix())
}
