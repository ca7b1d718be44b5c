package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pixgallery/internal/domain"
	"pixgallery/internal/eventbus"
	"pixgallery/internal/logging"
)

// Option configures a Lifecycle
type Option func(*Lifecycle)

// WithBus publishes lifecycle events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(l *Lifecycle) {
		l.bus = bus
	}
}

// WithContext sets the parent context of every request
func WithContext(ctx context.Context) Option {
	return func(l *Lifecycle) {
		if ctx != nil {
			l.parent = ctx
		}
	}
}

// Lifecycle owns the search state of one gallery: the current query, the
// pages fetched so far and the single outstanding request.
//
// Only the newest request may change the state. Issuing a request cancels
// the previous one and bumps the sequence number, so a stale result that
// still arrives is dropped by Settle.
type Lifecycle struct {
	mu      sync.Mutex
	fetcher Fetcher
	bus     eventbus.EventBus
	parent  context.Context

	state  domain.SearchState
	seq    uint64
	cancel context.CancelFunc
	closed bool
}

// New creates a lifecycle in the idle state
func New(fetcher Fetcher, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		fetcher: fetcher,
		parent:  context.Background(),
		state:   domain.SearchState{Page: 1},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Submit starts a new search. It returns nil when query is blank, equals
// the current query, or the lifecycle is closed.
func (l *Lifecycle) Submit(query string) *Request {
	query = strings.TrimSpace(query)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || query == "" || query == l.state.Query {
		return nil
	}

	l.state = domain.SearchState{
		Query: query,
		Page:  1,
		Items: []domain.ImageResult{},
	}
	logging.Info("search: submit", "query", query)
	l.publish(eventbus.SearchSubmittedEvent{Query: query})

	return l.begin()
}

// RequestMore asks for the next page of the current query.
// It returns nil before the first Submit or after Close.
func (l *Lifecycle) RequestMore() *Request {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.state.Query == "" {
		return nil
	}

	l.state.Page++
	logging.Info("search: load more", "query", l.state.Query, "page", l.state.Page)
	l.publish(eventbus.PageRequestedEvent{Query: l.state.Query, Page: l.state.Page})

	return l.begin()
}

// begin runs the fetch transition. Caller holds mu.
func (l *Lifecycle) begin() *Request {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	l.state.IsLoading = true
	l.state.Error = ""

	l.seq++
	ctx, cancel := context.WithCancel(l.parent)
	l.cancel = cancel

	req := &Request{
		Seq:     l.seq,
		Query:   l.state.Query,
		Page:    l.state.Page,
		ctx:     ctx,
		fetcher: l.fetcher,
	}
	l.publish(eventbus.FetchStartedEvent{Seq: req.Seq, Query: req.Query, Page: req.Page})
	return req
}

// Settle applies a finished request to the state
func (l *Lifecycle) Settle(res Result) Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || res.Seq != l.seq || l.cancel == nil {
		logging.Debug("search: discard stale result", "seq", res.Seq, "current", l.seq, "query", res.Query, "page", res.Page)
		l.publish(eventbus.FetchDiscardedEvent{Seq: res.Seq, Query: res.Query, Page: res.Page})
		return Outcome{Discarded: true}
	}

	l.cancel()
	l.cancel = nil
	l.state.IsLoading = false

	if res.Err != nil {
		if errors.Is(res.Err, context.Canceled) {
			logging.Debug("search: request cancelled", "seq", res.Seq, "query", res.Query)
			l.publish(eventbus.FetchDiscardedEvent{Seq: res.Seq, Query: res.Query, Page: res.Page})
			return Outcome{Discarded: true}
		}

		l.state.Error = res.Err.Error()
		logging.Warn("search: fetch failed", "query", res.Query, "page", res.Page, "err", res.Err)
		l.publish(eventbus.FetchFailedEvent{Seq: res.Seq, Query: res.Query, Page: res.Page, Message: l.state.Error})
		return Outcome{}
	}

	meta := res.Data.Meta
	l.state.TotalHits = meta.TotalHits
	l.state.HasMore = meta.HasMore()

	appended := &domain.ContentAppended{
		Query: res.Query,
		Page:  res.Page,
		From:  len(l.state.Items),
		Count: len(res.Data.Items),
	}
	if len(res.Data.Items) == 0 {
		l.state.IsEmpty = true
	} else {
		l.state.IsEmpty = false
		l.state.Items = append(l.state.Items, res.Data.Items...)
	}

	logging.Info("search: fetch succeeded", "query", res.Query, "page", res.Page, "count", appended.Count, "total_hits", meta.TotalHits, "has_more", l.state.HasMore)
	l.publish(eventbus.FetchSucceededEvent{
		Seq:       res.Seq,
		Query:     res.Query,
		Page:      res.Page,
		Count:     appended.Count,
		TotalHits: meta.TotalHits,
		HasMore:   l.state.HasMore,
	})
	l.publish(eventbus.ContentAppendedEvent{ContentAppended: *appended})

	return Outcome{Appended: appended}
}

// Fetch runs req on the calling goroutine and settles it. A nil req is a no-op.
func (l *Lifecycle) Fetch(req *Request) Outcome {
	if req == nil {
		return Outcome{}
	}
	return l.Settle(req.Run())
}

// Close cancels the outstanding request. Results settled afterwards are discarded.
func (l *Lifecycle) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.closed = true
}

// State returns a snapshot of the current state
func (l *Lifecycle) State() domain.SearchState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Status returns the derived lifecycle status
func (l *Lifecycle) Status() domain.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Status()
}

// InFlight reports whether a request is outstanding
func (l *Lifecycle) InFlight() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

func (l *Lifecycle) publish(event domain.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}
