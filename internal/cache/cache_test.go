// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"sync"
	"testing"
)

// constant returns a create func that records how often it ran.
func constant(v int, calls *int) func() int {
	return func() int {
		*calls++
		return v
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](0)

	calls := 0
	if v := c.GetOrCreate("k", constant(7, &calls)); v != 7 {
		t.Errorf("GetOrCreate = %d, want 7", v)
	}
	if v := c.GetOrCreate("k", constant(8, &calls)); v != 7 {
		t.Errorf("GetOrCreate on a hit = %d, want the cached 7", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	calls := 0
	for k := 1; k <= 3; k++ {
		c.GetOrCreate(k, constant(k, &calls))
	}

	c.GetOrCreate(1, constant(1, &calls)) // 2 is now the oldest
	c.GetOrCreate(4, constant(4, &calls))
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	calls = 0
	for _, k := range []int{1, 3, 4} {
		c.GetOrCreate(k, constant(k, &calls))
	}
	if calls != 0 {
		t.Errorf("recently used entries were evicted (%d recreated)", calls)
	}
	c.GetOrCreate(2, constant(2, &calls))
	if calls != 1 {
		t.Error("least recently used entry survived eviction")
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	calls := 0
	for i := range 500 {
		c.GetOrCreate(i, constant(i, &calls))
	}
	if c.Len() != 500 {
		t.Errorf("Len() = %d, want 500", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				k := (g*31 + i) % 40
				if v := c.GetOrCreate(k, func() int { return k * k }); v != k*k {
					t.Errorf("GetOrCreate(%d) = %d", k, v)
					return
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d, want <= 16", c.Len())
	}
}

func TestLRUList(t *testing.T) {
	var l lruList[int]
	a := l.PushFront(1)
	l.PushFront(2)
	c := l.PushFront(3)

	l.MoveToFront(a) // order: 1 3 2
	l.MoveToFront(a)
	l.unlink(c) // order: 1 2

	if l.len != 2 {
		t.Fatalf("len = %d, want 2", l.len)
	}
	if k, ok := l.RemoveOldest(); !ok || k != 2 {
		t.Errorf("RemoveOldest() = %d, %v; want 2", k, ok)
	}
	if k, ok := l.RemoveOldest(); !ok || k != 1 {
		t.Errorf("RemoveOldest() = %d, %v; want 1", k, ok)
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest() on empty list reported a key")
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[uint64, []float32](64)
	i := uint64(0)
	for b.Loop() {
		c.GetOrCreate(i%32, func() []float32 { return make([]float32, 31) })
		i++
	}
}
