package valuecache

import (
	"container/list"
	"errors"
	"sync"

	"github.com/urlscope/urlscope-core/urlvalue"
)

// DefaultCapacity bounds a Manager whose Options left Capacity unset.
const DefaultCapacity = 1024

// ErrNilContext reports a nil context passed to NewManager.
var ErrNilContext = errors.New("valuecache: nil context")

// Options configures a cache Manager.
type Options struct {
	Capacity int // Maximum number of resolved values kept; <= 0 means DefaultCapacity
}

// Stats tracks cache hit/miss statistics.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}

// entry is one cached resolution, keyed by the text as given.
type entry struct {
	text  string
	value *urlvalue.Value
}

// Manager provides thread-safe memoization of resolved URL values under a
// single context, evicting the least recently used entry once full.
type Manager struct {
	ctx      *urlvalue.Context
	capacity int

	mu      sync.Mutex
	order   *list.List // front is most recently used
	entries map[string]*list.Element

	statsMu sync.Mutex
	stats   Stats
}

// NewManager creates a cache manager resolving under ctx.
func NewManager(ctx *urlvalue.Context, opts Options) (*Manager, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		ctx:      ctx,
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}, nil
}

// Context returns the context every cached value resolves under.
func (m *Manager) Context() *urlvalue.Context { return m.ctx }

// Get returns the resolved value for text, resolving and caching it on
// first sight. Until the entry is evicted, identical text comes back as
// the same *Value.
func (m *Manager) Get(text string) *urlvalue.Value {
	m.mu.Lock()
	if el, ok := m.entries[text]; ok {
		m.order.MoveToFront(el)
		v := el.Value.(*entry).value
		m.mu.Unlock()
		m.recordHit()
		return v
	}

	v, err := urlvalue.Of(m.ctx, text)
	if err != nil {
		m.mu.Unlock()
		// NewManager rejected a nil context, the only way Of can fail.
		panic(err)
	}
	m.entries[text] = m.order.PushFront(&entry{text: text, value: v})
	evicted := false
	if m.order.Len() > m.capacity {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*entry).text)
		evicted = true
	}
	m.mu.Unlock()

	m.recordMiss()
	if evicted {
		m.recordEviction()
	}
	return v
}

// Invalidate removes a specific cache entry.
func (m *Manager) Invalidate(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[text]; ok {
		m.order.Remove(el)
		delete(m.entries, text)
	}
}

// Clear removes all cache entries.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.order.Init()
	m.entries = make(map[string]*list.Element)
}

// Len returns the number of cached entries.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// GetStats returns cache hit/miss statistics.
func (m *Manager) GetStats() Stats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.stats
}

func (m *Manager) recordHit() {
	m.statsMu.Lock()
	m.stats.Hits++
	m.statsMu.Unlock()
}

func (m *Manager) recordMiss() {
	m.statsMu.Lock()
	m.stats.Misses++
	m.statsMu.Unlock()
}

func (m *Manager) recordEviction() {
	m.statsMu.Lock()
	m.stats.Evictions++
	m.statsMu.Unlock()
}
