package cache

import (
	"container/list"
	"sync"
	"time"
)

type Config struct {
	MaxSize int
	TTL     time.Duration
}

type LRUCache[K comparable, V any] struct {
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	items   map[K]*list.Element
	order   *list.List
}

type cacheItem[K comparable, V any] struct {
	key       K
	value     V
	createdAt time.Time
}

func New[K comparable, V any](config Config) *LRUCache[K, V] {
	if config.MaxSize <= 0 {
		config.MaxSize = 100
	}

	return &LRUCache[K, V]{
		maxSize: config.MaxSize,
		ttl:     config.TTL,
		now:     time.Now,
		items:   make(map[K]*list.Element),
		order:   list.New(),
	}
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

// GetOrLoad returns the cached value for key or stores the result of load.
// hit reports whether the value came from the cache. Errors from load are
// not cached.
func (c *LRUCache[K, V]) GetOrLoad(key K, load func() (V, error)) (value V, hit bool, err error) {
	c.mu.Lock()
	if v, ok := c.get(key); ok {
		c.mu.Unlock()
		return v, true, nil
	}
	c.mu.Unlock()

	value, err = load()
	if err != nil {
		return value, false, err
	}
	c.Set(key, value)
	return value, false, nil
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		item := element.Value.(*cacheItem[K, V])
		item.value = value
		item.createdAt = c.now()
		c.order.MoveToFront(element)
		return
	}

	item := &cacheItem[K, V]{
		key:       key,
		value:     value,
		createdAt: c.now(),
	}
	c.items[key] = c.order.PushFront(item)

	if c.order.Len() > c.maxSize {
		c.removeOldest()
	}
}

func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		c.removeElement(element)
	}
}

func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order = list.New()
}

func (c *LRUCache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// CleanupExpired drops every entry older than the TTL.
func (c *LRUCache[K, V]) CleanupExpired() {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for element := c.order.Back(); element != nil; {
		prev := element.Prev()
		if c.expired(element.Value.(*cacheItem[K, V])) {
			c.removeElement(element)
		}
		element = prev
	}
}

func (c *LRUCache[K, V]) get(key K) (V, bool) {
	var zero V
	element, exists := c.items[key]
	if !exists {
		return zero, false
	}

	item := element.Value.(*cacheItem[K, V])
	if c.expired(item) {
		c.removeElement(element)
		return zero, false
	}

	c.order.MoveToFront(element)
	return item.value, true
}

func (c *LRUCache[K, V]) expired(item *cacheItem[K, V]) bool {
	return c.ttl > 0 && c.now().Sub(item.createdAt) > c.ttl
}

func (c *LRUCache[K, V]) removeElement(element *list.Element) {
	item := element.Value.(*cacheItem[K, V])
	delete(c.items, item.key)
	c.order.Remove(element)
}

func (c *LRUCache[K, V]) removeOldest() {
	if element := c.order.Back(); element != nil {
		c.removeElement(element)
	}
}
