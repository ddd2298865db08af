package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache is a fixed-capacity cache whose entries also expire after ttl.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration
	now      func() time.Time
}

func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	return &LRUCache[V]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	if ele, ok := c.cache[key]; ok {
		ent := ele.Value.(*entry[V])
		if c.now().After(ent.expiration) {
			c.removeElement(ele)
			return zero, false
		}
		c.ll.MoveToFront(ele)
		return ent.value, true
	}
	return zero, false
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// Add stores value only if key is absent or expired and reports whether it
// did. Check and insert happen under one lock.
func (c *LRUCache[V]) Add(key string, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		if !c.now().After(ele.Value.(*entry[V]).expiration) {
			return false
		}
		c.removeElement(ele)
	}
	c.set(key, value)
	return true
}

func (c *LRUCache[V]) set(key string, value V) {
	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = c.now().Add(c.ttl)
		return
	}

	ent := &entry[V]{key: key, value: value, expiration: c.now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

func (c *LRUCache[V]) removeOldest() {
	ele := c.ll.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.cache, ent.key)
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start runs the janitor until ctx is done. It satisfies the app starter contract.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache[V]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[V])
		if c.now().After(ent.expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
