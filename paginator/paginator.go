package paginator

import (
	"bikeshare/domain/dataset"
	"bikeshare/domain/entities/trip"
)

const DefaultPageSize = 5

// Page is a window [Start, End) of a dataset
// + Number: zero-based number of the page
// + TotalPages: amount of pages of the dataset
// + TotalRecords: amount of trips of the dataset
type Page struct {
	Number       int               `json:"number"`
	Start        int               `json:"start"`
	End          int               `json:"end"`
	TotalPages   int               `json:"total_pages"`
	TotalRecords int               `json:"total_records"`
	Records      []trip.TripRecord `json:"records"`
}

// Option configures a Paginator
type Option func(*Paginator)

// WithPageSize sets the amount of trips each page advances. Values lower than 1 are ignored
func WithPageSize(pageSize int) Option {
	return func(p *Paginator) {
		if pageSize > 0 {
			p.pageSize = pageSize
		}
	}
}

// WithLegacyWindow makes each page one trip wider than the page size, so the last trip of a page
// is also the first trip of the next one: 12 trips with page size 5 give [0,6), [5,11), [10,12).
// This is the six row window of the original explorer. It is off by default because it breaks
// the rule that pages never overlap
func WithLegacyWindow(legacy bool) Option {
	return func(p *Paginator) {
		p.legacyWindow = legacy
	}
}

// Paginator walks a dataset forward, one page at a time. It never wraps
type Paginator struct {
	ds           *dataset.Dataset
	pageSize     int
	legacyWindow bool
	page         int
}

func New(ds *dataset.Dataset, options ...Option) *Paginator {
	p := &Paginator{
		ds:       ds,
		pageSize: DefaultPageSize,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Next returns the next page and advances the cursor. The second value is false once the start
// of the page is beyond the dataset, and stays false on every later call
func (p *Paginator) Next() (Page, bool) {
	start := p.page * p.pageSize
	if start >= p.ds.Len() {
		return Page{}, false
	}

	width := p.pageSize
	if p.legacyWindow {
		width += 1
	}

	end := start + width
	if end > p.ds.Len() {
		end = p.ds.Len()
	}

	page := Page{
		Number:       p.page,
		Start:        start,
		End:          end,
		TotalPages:   p.TotalPages(),
		TotalRecords: p.ds.Len(),
		Records:      p.ds.Slice(start, end),
	}

	p.page += 1
	return page, true
}

// TotalPages returns the amount of pages Next returns before being exhausted
func (p *Paginator) TotalPages() int {
	return (p.ds.Len() + p.pageSize - 1) / p.pageSize
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}
