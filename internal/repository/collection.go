package repository

// collection is a keyed set of rows that iterates in insertion order.
// Overwriting an existing key keeps its original position.
type collection[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

func newCollection[K comparable, V any]() *collection[K, V] {
	return &collection[K, V]{items: make(map[K]V)}
}

func (c *collection[K, V]) get(k K) (V, bool) {
	v, ok := c.items[k]
	return v, ok
}

func (c *collection[K, V]) put(k K, v V) {
	if _, ok := c.items[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.items[k] = v
}

func (c *collection[K, V]) delete(k K) bool {
	if _, ok := c.items[k]; !ok {
		return false
	}
	delete(c.items, k)
	for i, key := range c.keys {
		if key == k {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return true
}

// deleteWhere removes every row matching fn in one pass and returns how many went.
func (c *collection[K, V]) deleteWhere(fn func(V) bool) int {
	kept := c.keys[:0]
	removed := 0
	for _, k := range c.keys {
		if fn(c.items[k]) {
			delete(c.items, k)
			removed++
			continue
		}
		kept = append(kept, k)
	}
	c.keys = kept
	return removed
}

func (c *collection[K, V]) values() []V {
	out := make([]V, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

func (c *collection[K, V]) filter(fn func(V) bool) []V {
	out := make([]V, 0)
	for _, k := range c.keys {
		if v := c.items[k]; fn(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c *collection[K, V]) len() int {
	return len(c.keys)
}
