package positions

import "sort"

// Set is the coverage of one or more occurrence windows, keyed by time-series index.
type Set map[int]struct{}

func NewSet() Set {
	return make(Set)
}

// FromStarts expands every start into [start, start+ws) and unions the ranges.
func FromStarts(starts []int, ws int) Set {
	s := NewSet()
	for _, p := range starts {
		s.AddWindow(p, ws)
	}
	return s
}

func (s Set) AddWindow(start, ws int) {
	for i := start; i < start+ws; i++ {
		s[i] = struct{}{}
	}
}

func (s Set) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the covered indices in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
