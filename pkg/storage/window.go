package storage

import "math"

// MinTime and MaxTime bound the "all time" window, spec.md §6.
const (
	MinTime int64 = math.MinInt64
	MaxTime int64 = math.MaxInt64
)

// Window is a half-open time interval [Start, End) over event time.
type Window struct {
	Start int64
	End   int64
}

// AllTime is the window spanning every representable timestamp.
func AllTime() Window { return Window{Start: MinTime, End: MaxTime} }

// NewWindow validates and builds a window. t_start >= t_end is InvalidWindow.
func NewWindow(start, end int64) (Window, error) {
	if start >= end {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// Contains reports whether t falls in the half-open window.
func (w Window) Contains(t int64) bool {
	return t >= w.Start && t < w.End
}

// Overlaps reports whether the two half-open windows share any instant.
func (w Window) Overlaps(o Window) bool {
	return w.Start < o.End && o.Start < w.End
}

// Clamp intersects two windows: clamp(a,b).clamp(c,d) == (max(a,c), min(b,d)).
func (w Window) Clamp(o Window) Window {
	start := w.Start
	if o.Start > start {
		start = o.Start
	}
	end := w.End
	if o.End < end {
		end = o.End
	}
	return Window{Start: start, End: end}
}
