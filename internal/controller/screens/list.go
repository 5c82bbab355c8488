package screens

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/controller/pagination"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
)

// Pager is implemented by every filter type: a copy with the page changed.
type Pager[F any] interface {
	WithPage(page int) F
}

// EmptySentinel is the row rendered when a page comes back with no items.
const EmptySentinel = "— no results —"

// ListScreen is the shared core of every admin list view: one filter
// state, one page of rows, a loading flag that suppresses the table, an
// inline error banner and a transient success notice. Any filter or page
// change goes back to the server; the already-fetched page is never
// re-filtered locally.
type ListScreen[T any, F Pager[F]] struct {
	mu      sync.Mutex
	name    string
	filter  F
	fetch   func(context.Context, F) (model.Page[T], error)
	page    model.Page[T]
	loaded  bool
	loading bool
	loadErr error
	notice  string
	logger  *zap.Logger
}

func NewListScreen[T any, F Pager[F]](name string, initial F, fetch func(context.Context, F) (model.Page[T], error), logger *zap.Logger) *ListScreen[T, F] {
	return &ListScreen[T, F]{
		name:   name,
		filter: initial,
		fetch:  fetch,
		logger: logger,
	}
}

// Reload fetches the current page with the current filters.
func (s *ListScreen[T, F]) Reload(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.loadErr = nil
	filter := s.filter
	s.mu.Unlock()

	page, err := s.fetch(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		// Inline banner, no automatic retry.
		s.loadErr = err
		s.logger.Warn("List fetch failed",
			zap.String("screen", s.name),
			zap.Error(err))
		return err
	}
	s.page = page
	s.loaded = true
	return nil
}

// SetFilter replaces the filter state, resets to the first page and
// re-fetches.
func (s *ListScreen[T, F]) SetFilter(ctx context.Context, filter F) error {
	s.mu.Lock()
	s.filter = filter.WithPage(1)
	s.mu.Unlock()
	return s.Reload(ctx)
}

// SetPage jumps to a page and re-fetches.
func (s *ListScreen[T, F]) SetPage(ctx context.Context, page int) error {
	s.mu.Lock()
	s.filter = s.filter.WithPage(page)
	s.mu.Unlock()
	return s.Reload(ctx)
}

// HandlePageCallback reacts to a pagination button press. Returns false
// when the callback belongs to another control.
func (s *ListScreen[T, F]) HandlePageCallback(ctx context.Context, callback string) (bool, error) {
	page, ok := pagination.ParseCallback(s.pagePrefix(), callback)
	if !ok {
		return false, nil
	}
	return true, s.SetPage(ctx, page)
}

func (s *ListScreen[T, F]) Filter() F {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Rows returns the current page's items, nil while a fetch is in flight
// so the table is suppressed.
func (s *ListScreen[T, F]) Rows() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading || !s.loaded {
		return nil
	}
	return s.page.Items
}

func (s *ListScreen[T, F]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Empty reports whether the screen should render the empty sentinel row.
func (s *ListScreen[T, F]) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && !s.loading && s.loadErr == nil && len(s.page.Items) == 0
}

// ErrorBanner returns the inline banner text, empty when the last fetch
// succeeded.
func (s *ListScreen[T, F]) ErrorBanner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr == nil {
		return ""
	}
	return ErrorMessage(s.loadErr)
}

func (s *ListScreen[T, F]) Meta() model.PageMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Meta
}

// PageButtons renders one affordance per page.
func (s *ListScreen[T, F]) PageButtons() []pagination.Button {
	meta := s.Meta()
	return pagination.PageButtons(s.pagePrefix(), meta.CurrentPage, meta.LastPage)
}

// NavButtons renders the prev/indicator/next row.
func (s *ListScreen[T, F]) NavButtons() []pagination.Button {
	return pagination.NavButtons(s.pagePrefix(), s.Meta())
}

// SetNotice stores a transient success message.
func (s *ListScreen[T, F]) SetNotice(notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = notice
}

// TakeNotice returns the pending notice and clears it.
func (s *ListScreen[T, F]) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notice := s.notice
	s.notice = ""
	return notice
}

func (s *ListScreen[T, F]) pagePrefix() string {
	return s.name + "_page:"
}
