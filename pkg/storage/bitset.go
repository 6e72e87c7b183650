package storage

import "sort"

// bitset is a set of physical vertex ids (PIDs), staged by cardinality so
// the common case of a single-vertex bucket in the TimeIndex is
// allocation-light: component of C5, grounded on the original's
// BitSet::one/push/iter (docbrown/core/src/bitset.rs, referenced from
// graph.rs). Spec.md §4.5 names a four-stage progression ending in a
// Roaring bitmap; no example repo in the retrieval pack vendors a Roaring
// bitmap library, so the fourth stage here is a hash-set "big" stage
// (a map, used once the sorted "small" slice outgrows smallThreshold)
// rather than a true Roaring bitmap (see DESIGN.md).
type bitset struct {
	state bitsetState
	one   uint64
	small []uint64 // sorted, unique; used while len <= smallThreshold
	big   map[uint64]struct{}
}

type bitsetState uint8

const (
	bitsetEmpty bitsetState = iota
	bitsetOne
	bitsetSmall
	bitsetBig
)

// smallThreshold is the cardinality above which a bitset promotes from a
// sorted slice to a hash set.
const smallThreshold = 64

func newBitsetOf(pid uint64) *bitset {
	return &bitset{state: bitsetOne, one: pid}
}

// push inserts pid, growing the representation as needed.
func (b *bitset) push(pid uint64) {
	switch b.state {
	case bitsetEmpty:
		b.state = bitsetOne
		b.one = pid
	case bitsetOne:
		if pid == b.one {
			return
		}
		small := []uint64{b.one, pid}
		sort.Slice(small, func(i, j int) bool { return small[i] < small[j] })
		b.small = small
		b.state = bitsetSmall
	case bitsetSmall:
		i := sort.Search(len(b.small), func(i int) bool { return b.small[i] >= pid })
		if i < len(b.small) && b.small[i] == pid {
			return
		}
		if len(b.small) >= smallThreshold {
			big := make(map[uint64]struct{}, len(b.small)+1)
			for _, v := range b.small {
				big[v] = struct{}{}
			}
			big[pid] = struct{}{}
			b.big = big
			b.small = nil
			b.state = bitsetBig
			return
		}
		b.small = append(b.small, 0)
		copy(b.small[i+1:], b.small[i:])
		b.small[i] = pid
	case bitsetBig:
		b.big[pid] = struct{}{}
	}
}

// contains reports whether pid is a member.
func (b *bitset) contains(pid uint64) bool {
	switch b.state {
	case bitsetEmpty:
		return false
	case bitsetOne:
		return b.one == pid
	case bitsetSmall:
		i := sort.Search(len(b.small), func(i int) bool { return b.small[i] >= pid })
		return i < len(b.small) && b.small[i] == pid
	default:
		_, ok := b.big[pid]
		return ok
	}
}

// len reports the set's cardinality.
func (b *bitset) len() int {
	switch b.state {
	case bitsetEmpty:
		return 0
	case bitsetOne:
		return 1
	case bitsetSmall:
		return len(b.small)
	default:
		return len(b.big)
	}
}

// iter yields every member, ascending for the one/small stages (the big
// stage iterates in map order, which is unspecified but still exhaustive).
func (b *bitset) iter() func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		switch b.state {
		case bitsetEmpty:
			return
		case bitsetOne:
			yield(b.one)
		case bitsetSmall:
			for _, v := range b.small {
				if !yield(v) {
					return
				}
			}
		case bitsetBig:
			for v := range b.big {
				if !yield(v) {
					return
				}
			}
		}
	}
}
