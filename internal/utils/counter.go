package utils

// Counter counts occurrences of comparable keys while remembering
// first-seen order, so downstream sorts stay deterministic regardless of
// map iteration order.
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{counts: make(map[K]int)}
}

func (c *Counter[K]) Add(key K) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *Counter[K]) AddN(key K, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

func (c *Counter[K]) Get(key K) int {
	return c.counts[key]
}

// Keys returns the distinct keys in first-seen order.
func (c *Counter[K]) Keys() []K {
	return append([]K(nil), c.order...)
}

func (c *Counter[K]) Len() int {
	return len(c.order)
}
