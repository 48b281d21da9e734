package table

import "fmt"

// Pager slices a table into fixed-size pages. It never copies rows; pages
// are windows into the underlying table.
type Pager struct {
	t    *Table
	size int
	page int
}

// NewPager returns a pager positioned on the first page. Size must be at
// least 1.
func NewPager(t *Table, size int) (*Pager, error) {
	if size < 1 {
		return nil, fmt.Errorf("page size must be >= 1, got %d", size)
	}
	return &Pager{t: t, size: size}, nil
}

// PageCount is ceil(rows / size).
func (p *Pager) PageCount() int {
	return (p.t.Len() + p.size - 1) / p.size
}

// PageIndex is the zero-based index of the current page.
func (p *Pager) PageIndex() int { return p.page }

// Size is the current page size.
func (p *Pager) Size() int { return p.size }

// Page returns the current page's rows and its half-open row range
// [start, end) within the table.
func (p *Pager) Page() (rows []Row, start, end int) {
	start = p.page * p.size
	if start >= p.t.Len() {
		return nil, p.t.Len(), p.t.Len()
	}
	end = start + p.size
	if end > p.t.Len() {
		end = p.t.Len()
	}
	return p.t.Rows[start:end], start, end
}

// Next advances to the following page, reporting whether one exists.
func (p *Pager) Next() bool {
	if p.page+1 >= p.PageCount() {
		return false
	}
	p.page++
	return true
}

// Resize changes the page size and moves to the page containing the first
// row of the page that was current before the resize. The original program
// restarted from the first page on every resize; preserving the reader's
// position was chosen instead.
func (p *Pager) Resize(size int) error {
	if size < 1 {
		return fmt.Errorf("page size must be >= 1, got %d", size)
	}
	first := p.page * p.size
	p.size = size
	p.page = first / size
	return nil
}
