package lru

import "testing"

func TestGetSet(t *testing.T) {
	c := New[string, int](4)

	if _, found := c.Get("missing"); found {
		t.Error("Get on empty cache found something")
	}

	c.Set("a", 1)
	c.Set("a", 2) // overwrite
	if v, found := c.Get("a"); !found || v != 2 {
		t.Errorf("Get(\"a\") = %d, %t", v, found)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestEviction(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1) // touch 1 so 2 is the oldest
	c.Set(3, 3)

	if _, found := c.Get(2); found {
		t.Error("oldest entry survived eviction")
	}
	if _, found := c.Get(1); !found {
		t.Error("recently used entry was evicted")
	}
	if _, found := c.Get(3); !found {
		t.Error("new entry missing")
	}
}

func TestDelete(t *testing.T) {
	c := New[string, string](4)
	c.Set("a", "x")
	c.Delete("a")
	c.Delete("never-existed")

	if _, found := c.Get("a"); found {
		t.Error("deleted entry still present")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}
