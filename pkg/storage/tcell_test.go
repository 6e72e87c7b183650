package storage

import "testing"

func TestTCellEmptyHasNoLatest(t *testing.T) {
	var c TCell[int64]
	if _, ok := c.Latest(); ok {
		t.Fatal("empty cell reported a latest value")
	}
	if n := c.Len(); n != 0 {
		t.Fatalf("empty cell len = %d, want 0", n)
	}
}

func TestTCellSetSameTimeOverwrites(t *testing.T) {
	var c TCell[string]
	c.Set(10, "first")
	c.Set(10, "second")
	if n := c.Len(); n != 1 {
		t.Fatalf("len = %d, want 1", n)
	}
	v, ok := c.Latest()
	if !ok || v != "second" {
		t.Fatalf("Latest() = %q, %v, want \"second\", true", v, ok)
	}
}

func TestTCellOutOfOrderInsertOrdersByTime(t *testing.T) {
	var c TCell[int64]
	c.Set(30, 3)
	c.Set(10, 1)
	c.Set(20, 2)

	var times []int64
	var vals []int64
	c.Iter()(func(t int64, v int64) bool {
		times = append(times, t)
		vals = append(vals, v)
		return true
	})
	want := []int64{10, 20, 30}
	for i, wt := range want {
		if times[i] != wt {
			t.Fatalf("times[%d] = %d, want %d", i, times[i], wt)
		}
		if vals[i] != wt/10 {
			t.Fatalf("vals[%d] = %d, want %d", i, vals[i], wt/10)
		}
	}

	latest, ok := c.Latest()
	if !ok || latest != 3 {
		t.Fatalf("Latest() = %d, %v, want 3, true", latest, ok)
	}
}

func TestTCellIterWindow(t *testing.T) {
	var c TCell[int64]
	for _, t := range []int64{5, 10, 15, 20, 25} {
		c.Set(t, t)
	}
	w := Window{Start: 10, End: 20}
	var got []int64
	c.IterWindow(w)(func(t int64, _ int64) bool {
		got = append(got, t)
		return true
	})
	if len(got) != 2 || got[0] != 10 || got[1] != 15 {
		t.Fatalf("IterWindow(%v) = %v, want [10 15]", w, got)
	}
	if n := c.LenWindow(w); n != 2 {
		t.Fatalf("LenWindow = %d, want 2", n)
	}
}

func TestTCellIterEarlyStop(t *testing.T) {
	var c TCell[int64]
	for _, t := range []int64{1, 2, 3, 4} {
		c.Set(t, t)
	}
	count := 0
	c.Iter()(func(int64, int64) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("iteration stopped at %d, want 2", count)
	}
}
