// Package shopping holds the session's shopping list.
package shopping

import "sync"

// List is an append-only list of item lines. Duplicates are kept.
type List struct {
	mu    sync.Mutex
	items []string
}

// New returns an empty list.
func New() *List {
	return &List{items: []string{}}
}

// Add appends an item.
func (l *List) Add(item string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

// Clear removes every item.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = []string{}
}

// Items returns a copy of the items in insertion order.
func (l *List) Items() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
