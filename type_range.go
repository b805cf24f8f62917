package arcana

// Range represents a range of dates. A zero From or To leaves that side of
// the range unbounded, so the zero Range contains every date.
type Range struct{ From, To Date }

// NewRange creates a new date range. If both bounds are set and 'from' is
// after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Since returns a range with only a lower bound.
func Since(from Date) Range { return Range{From: from} }

// Until returns a range with only an upper bound.
func Until(to Date) Range { return Range{To: to} }

// On returns the single-day range containing exactly 'day'.
func On(day Date) Range { return Range{From: day, To: day} }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}
