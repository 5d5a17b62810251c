package client

import (
	"context"
	"errors"
	"fmt"
	"leadgen/pkg/domain"
	"slices"
	"sync"
	"time"
)

const (
	// DefaultNoticeTTL is how long an exclude or restore notice stays visible.
	DefaultNoticeTTL = 3 * time.Second
	// DefaultPageSize is the page size a browser starts with.
	DefaultPageSize = 50
)

// ErrClosed is returned by state machines used after Close.
var ErrClosed = errors.New("client: closed")

// LeadAPI is the part of the API a LeadBrowser needs.
type LeadAPI interface {
	ListLeads(ctx context.Context, q LeadQuery) (domain.LeadPage, error)
	Exclude(ctx context.Context, ids []domain.LeadID, categories []string, custom string) (int64, error)
	Restore(ctx context.Context, ids []domain.LeadID) (int64, error)
}

var _ LeadAPI = (*Client)(nil)

type BrowserOptions struct {
	PageSize  int
	NoticeTTL time.Duration
}

// LeadBrowser holds the state of a paginated lead view: the query, the
// selected rows, the last loaded page and a transient notice.
//
// Every load is tagged with a generation; a response is applied only when no
// newer load was started meanwhile.
type LeadBrowser struct {
	api  LeadAPI
	opts BrowserOptions

	ctx    context.Context
	cancel context.CancelFunc
	timers timers

	mu           sync.Mutex
	query        LeadQuery
	selection    []domain.LeadID
	generation   uint64
	loading      bool
	page         domain.LeadPage
	err          error
	notice       string
	noticeTimer  *time.Timer
	refreshTimer *time.Timer
	closed       bool
}

func NewLeadBrowser(api LeadAPI, opts BrowserOptions) *LeadBrowser {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = DefaultNoticeTTL
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &LeadBrowser{
		api:    api,
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		query:  LeadQuery{Page: 1, PageSize: opts.PageSize},
	}
}

func (b *LeadBrowser) Query() LeadQuery {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.query
}

// Page returns the last applied page.
func (b *LeadBrowser) Page() domain.LeadPage {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.page
}

// Err returns the error of the last applied load.
func (b *LeadBrowser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.err
}

func (b *LeadBrowser) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.loading
}

func (b *LeadBrowser) Notice() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.notice
}

// Selection returns the selected lead ids in selection order.
func (b *LeadBrowser) Selection() []domain.LeadID {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.selection)
}

// Toggle adds id to the selection or removes it when already selected.
func (b *LeadBrowser) Toggle(id domain.LeadID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := slices.Index(b.selection, id); i >= 0 {
		b.selection = slices.Delete(b.selection, i, i+1)

		return
	}
	b.selection = append(b.selection, id)
}

func (b *LeadBrowser) Select(ids ...domain.LeadID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, id := range ids {
		if !slices.Contains(b.selection, id) {
			b.selection = append(b.selection, id)
		}
	}
}

func (b *LeadBrowser) ClearSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selection = nil
}

// SetFilter switches the filter. A change resets to page 1, clears the
// selection and reloads.
func (b *LeadBrowser) SetFilter(ctx context.Context, f domain.LeadFilter) error {
	b.mu.Lock()
	if b.query.Filter == f {
		b.mu.Unlock()

		return nil
	}
	b.query.Filter = f
	b.query.Page = 1
	b.selection = nil
	b.mu.Unlock()

	return b.Reload(ctx)
}

// SetPageSize changes the page size. A change resets to page 1, clears the
// selection and reloads.
func (b *LeadBrowser) SetPageSize(ctx context.Context, size int) error {
	b.mu.Lock()
	if b.query.PageSize == size {
		b.mu.Unlock()

		return nil
	}
	b.query.PageSize = size
	b.query.Page = 1
	b.selection = nil
	b.mu.Unlock()

	return b.Reload(ctx)
}

// SetPage moves to another page keeping the selection.
func (b *LeadBrowser) SetPage(ctx context.Context, page int) error {
	b.mu.Lock()
	b.query.Page = max(page, 1)
	b.mu.Unlock()

	return b.Reload(ctx)
}

// Reload fetches the current query. A response that arrives after a newer
// load started is dropped and Reload returns nil.
func (b *LeadBrowser) Reload(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return ErrClosed
	}
	b.generation++
	gen := b.generation
	query := b.query
	b.loading = true
	b.mu.Unlock()

	page, err := b.api.ListLeads(ctx, query)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation || b.closed {
		return nil
	}
	b.loading = false
	b.err = err
	if err != nil {
		b.page = domain.LeadPage{Page: query.Page, PageSize: query.PageSize, Filter: query.Filter}

		return err
	}
	b.page = page

	return nil
}

// Exclude excludes the selected leads. On success the selection is cleared,
// a notice is shown and the view reloads.
func (b *LeadBrowser) Exclude(ctx context.Context, categories []string, custom string) (int64, error) {
	ids := b.Selection()
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := b.api.Exclude(ctx, ids, categories, custom)
	if err != nil {
		return 0, err
	}
	b.completeMutation(fmt.Sprintf("%d leads excluded", n))

	return n, b.Reload(ctx)
}

// Restore moves the selected leads back to the active view.
func (b *LeadBrowser) Restore(ctx context.Context) (int64, error) {
	ids := b.Selection()
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := b.api.Restore(ctx, ids)
	if err != nil {
		return 0, err
	}
	b.completeMutation(fmt.Sprintf("%d leads restored", n))

	return n, b.Reload(ctx)
}

func (b *LeadBrowser) completeMutation(notice string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.selection = nil
	b.notice = notice
	b.timers.arm(&b.noticeTimer, b.opts.NoticeTTL, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.notice = ""
	})
}

// RefreshAfter reloads the view once d elapsed, replacing an earlier pending
// refresh. Used after workflow triggers that finish out of band.
func (b *LeadBrowser) RefreshAfter(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.timers.arm(&b.refreshTimer, d, func() {
		_ = b.Reload(b.ctx)
	})
}

// Close stops pending timers, cancels scheduled reloads and waits for running
// callbacks.
func (b *LeadBrowser) Close() {
	b.mu.Lock()
	b.closed = true
	b.timers.stop(&b.noticeTimer)
	b.timers.stop(&b.refreshTimer)
	b.mu.Unlock()

	b.cancel()
	b.timers.wait()
}
