package storage

import "testing"

func TestTimeIndexIterWindowDedupsPerPID(t *testing.T) {
	var idx TimeIndex
	idx.Insert(1, 100)
	idx.Insert(2, 100) // same pid touched again at a different time
	idx.Insert(2, 200)
	idx.Insert(3, 300)

	var pids []uint64
	idx.IterWindow(Window{Start: 0, End: 10})(func(pid uint64) bool {
		pids = append(pids, pid)
		return true
	})
	if len(pids) != 3 {
		t.Fatalf("IterWindow yielded %v, want 3 distinct pids", pids)
	}
}

func TestTimeIndexIterWindowRespectsBounds(t *testing.T) {
	var idx TimeIndex
	idx.Insert(5, 1)
	idx.Insert(15, 2)
	idx.Insert(25, 3)

	var pids []uint64
	idx.IterWindow(Window{Start: 10, End: 20})(func(pid uint64) bool {
		pids = append(pids, pid)
		return true
	})
	if len(pids) != 1 || pids[0] != 2 {
		t.Fatalf("IterWindow([10,20)) = %v, want [2]", pids)
	}
}

func TestTimeIndexLenCountsDistinctTimestamps(t *testing.T) {
	var idx TimeIndex
	idx.Insert(1, 1)
	idx.Insert(1, 2)
	idx.Insert(2, 1)
	if n := idx.Len(); n != 2 {
		t.Fatalf("Len() = %d, want 2 distinct timestamps", n)
	}
}

func TestTimeIndexIterIsExhaustive(t *testing.T) {
	var idx TimeIndex
	for t := int64(0); t < 5; t++ {
		idx.Insert(t, uint64(t))
	}
	seen := map[uint64]bool{}
	idx.Iter()(func(pid uint64) bool {
		seen[pid] = true
		return true
	})
	if len(seen) != 5 {
		t.Fatalf("Iter saw %d distinct pids, want 5", len(seen))
	}
}
