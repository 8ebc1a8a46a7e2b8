// Package cache provides the process-local response cache for answered
// queries. Entries expire lazily on read and the store is bounded by a
// fixed capacity with least-recently-used eviction.
package cache

import (
	"container/list"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"legalease-backend/models"
)

const (
	// DefaultCapacity bounds the number of live entries
	DefaultCapacity = 256
	// SuccessTTL applies to knowledge-base, corpus, and LLM answers
	SuccessTTL = 30 * time.Minute
	// FallbackTTL applies to static-fallback answers
	FallbackTTL = 5 * time.Minute
)

type entry struct {
	key       string
	answer    *models.Answer
	createdAt time.Time
	ttl       time.Duration
}

// ResponseCache is a bounded TTL cache keyed by normalized query plus
// serialized options. Safe for concurrent use.
type ResponseCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List               // front = most recently used
	entries  map[string]*list.Element // key -> element holding *entry

	now func() time.Time // stubbed in tests
}

// New creates a response cache with the given capacity.
// A capacity of 0 or less falls back to DefaultCapacity.
func New(capacity int) *ResponseCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ResponseCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
		now:      time.Now,
	}
}

// options is the serialized portion of the cache key beyond the query
type options struct {
	Level models.Level `json:"level"`
}

// Key computes the cache key for a query and level
func Key(query string, level models.Level) string {
	opts, _ := json.Marshal(options{Level: level})
	return strings.ToLower(strings.TrimSpace(query)) + ":" + string(opts)
}

// Get returns a copy of the cached answer for (query, level), or nil on
// a miss. Expired entries are evicted here; there is no background sweep.
func (c *ResponseCache) Get(query string, level models.Level) *models.Answer {
	key := Key(query, level)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil
	}
	e := el.Value.(*entry)
	if c.now().Sub(e.createdAt) > e.ttl {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil
	}
	c.order.MoveToFront(el)
	return e.answer.Clone()
}

// Set stores a copy of the answer under (query, level) with the given
// TTL, evicting the least-recently-used entry when over capacity
func (c *ResponseCache) Set(query string, level models.Level, answer *models.Answer, ttl time.Duration) {
	if answer == nil {
		return
	}
	if ttl <= 0 {
		ttl = SuccessTTL
	}
	key := Key(query, level)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.answer = answer.Clone()
		e.createdAt = c.now()
		e.ttl = ttl
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&entry{
		key:       key,
		answer:    answer.Clone(),
		createdAt: c.now(),
		ttl:       ttl,
	})
	c.entries[key] = el

	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}
}

// Clear drops all entries
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
}

// Len reports the number of live entries (including not-yet-swept
// expired ones)
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
