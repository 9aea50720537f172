package cache

import "testing"

func TestLRUCache(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(2)

	c.Put("a", "1")
	c.Put("b", "2")

	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Fatalf("get a: got %q ok=%v", v, ok)
	}

	// "b" is now the oldest and is evicted by the third insert.
	c.Put("c", "3")

	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Fatalf("get a after eviction: got %q ok=%v", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("len: got %d, want 2", c.Len())
	}
}

func TestLRUCacheOverwrite(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(2)
	c.Put("a", "1")
	c.Put("a", "2")

	if v, _ := c.Get("a"); v != "2" {
		t.Fatalf("got %q, want %q", v, "2")
	}
	if c.Len() != 1 {
		t.Fatalf("len: got %d, want 1", c.Len())
	}
}
