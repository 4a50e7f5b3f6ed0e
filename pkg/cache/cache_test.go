package cache

import (
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[[]string], clk *clock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[[]string], clk *clock, t *testing.T) {
				c.Set("admins", []string{"a@example.com"})
				clk.advance(500 * time.Millisecond)
				if v, ok := c.Get("admins"); !ok || len(v) != 1 || v[0] != "a@example.com" {
					t.Errorf("expected cached admins, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[[]string], clk *clock, t *testing.T) {
				c.Set("admins", []string{"a"})
				clk.advance(2 * time.Second)
				if _, ok := c.Get("admins"); ok {
					t.Errorf("expected key to be expired")
				}
				if c.Size() != 0 {
					t.Errorf("expected expired entry to be removed, size=%d", c.Size())
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[[]string], clk *clock, t *testing.T) {
				c.Set("a", []string{"1"})
				c.Set("b", []string{"2"})
				c.Set("c", []string{"3"})
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get("c"); !ok || v[0] != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[[]string], clk *clock, t *testing.T) {
				c.Set("a", []string{"1"})
				clk.advance(700 * time.Millisecond)
				c.Set("a", []string{"2"})
				clk.advance(700 * time.Millisecond)
				if v, ok := c.Get("a"); !ok || v[0] != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes entry",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[[]string], clk *clock, t *testing.T) {
				c.Set("a", []string{"1"})
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected deleted key to be gone")
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[[]string], clk *clock, t *testing.T) {
				c.Set("a", []string{"1"})
				clk.advance(2 * time.Second)
				c.Set("b", []string{"2"})

				c.cleanup()

				if c.Size() != 1 {
					t.Errorf("expected only fresh entry to remain, size=%d", c.Size())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache[[]string](tt.capacity, tt.ttl)
			c.now = clk.now
			tt.actions(c, clk, t)
		})
	}
}
