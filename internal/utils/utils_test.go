package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterPreservesFirstSeenOrder(t *testing.T) {
	c := NewCounter[string]()
	c.Add("b")
	c.Add("a")
	c.Add("b")
	c.AddN("c", 5)

	assert.Equal(t, []string{"b", "a", "c"}, c.Keys())
	assert.Equal(t, 2, c.Get("b"))
	assert.Equal(t, 1, c.Get("a"))
	assert.Equal(t, 5, c.Get("c"))
	assert.Equal(t, 0, c.Get("missing"))
	assert.Equal(t, 3, c.Len())
}

func TestChunk(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	chunks := Chunk(items, 2)

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	assert.Nil(t, Chunk([]int{}, 2))
	assert.Nil(t, Chunk(items, 0))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 3.14, RoundTo(3.14159, 2))
	assert.Equal(t, 3.0, RoundTo(2.5, 0))
	assert.Equal(t, -1.6, RoundTo(-1.55, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-2, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
}

func TestPct(t *testing.T) {
	assert.Equal(t, 50.0, Pct(1, 2))
	assert.Equal(t, 0.0, Pct(0, 0))
	assert.Equal(t, 0.0, Pct(5, 0))
}
