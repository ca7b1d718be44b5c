package search

import (
	"context"

	"pixgallery/internal/domain"
)

// Fetcher retrieves one page of results for a query
type Fetcher interface {
	Fetch(ctx context.Context, query string, page int) (domain.Page, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, query string, page int) (domain.Page, error)

func (f FetcherFunc) Fetch(ctx context.Context, query string, page int) (domain.Page, error) {
	return f(ctx, query, page)
}

// Request is a single fetch issued by the lifecycle. Run may be called from
// any goroutine; its Result must be handed back to Lifecycle.Settle.
type Request struct {
	Seq   uint64
	Query string
	Page  int

	ctx     context.Context
	fetcher Fetcher
}

// Context is cancelled once the request is superseded or the lifecycle closes
func (r *Request) Context() context.Context {
	return r.ctx
}

// Run performs the fetch
func (r *Request) Run() Result {
	data, err := r.fetcher.Fetch(r.ctx, r.Query, r.Page)
	return Result{
		Seq:   r.Seq,
		Query: r.Query,
		Page:  r.Page,
		Data:  data,
		Err:   err,
	}
}

// Result is the outcome of Request.Run
type Result struct {
	Seq   uint64
	Query string
	Page  int
	Data  domain.Page
	Err   error
}

// Outcome tells the caller what Settle did with a Result
type Outcome struct {
	// Discarded is set when the result belonged to a superseded or
	// cancelled request and left the items and error untouched.
	Discarded bool

	// Appended is set after every successful fetch, Count is zero for an empty page
	Appended *domain.ContentAppended
}
