package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](frontier Frontier[T]) []T {
	var items []T
	for {
		item, ok := frontier.Pop()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

func drainPriority[T comparable](queue *PriorityQueue[T]) []T {
	var items []T
	for {
		item, ok := queue.Pop()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

func TestStack_PopsLastPushedFirst(t *testing.T) {
	stack := NewStack[int]()
	assert.True(t, stack.IsEmpty())
	for i := 1; i <= 3; i++ {
		stack.Push(i)
	}
	assert.Equal(t, 3, stack.Len())
	assert.Equal(t, []int{3, 2, 1}, drain[int](stack))
	assert.True(t, stack.IsEmpty())

	_, ok := stack.Pop()
	assert.False(t, ok)
}

func TestQueue_PopsFirstPushedFirst(t *testing.T) {
	queue := NewQueue[int]()
	for i := 1; i <= 3; i++ {
		queue.Push(i)
	}
	first, ok := queue.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	queue.Push(4)
	assert.Equal(t, []int{2, 3, 4}, drain[int](queue))
	_, ok = queue.Pop()
	assert.False(t, ok)
}

func TestQueue_OrderSurvivesCompaction(t *testing.T) {
	queue := NewQueue[int]()
	next, want := 0, 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 50; i++ {
			queue.Push(next)
			next++
		}
		for i := 0; i < 40; i++ {
			got, ok := queue.Pop()
			require.True(t, ok)
			require.Equal(t, want, got)
			want++
		}
	}
	assert.Equal(t, next-want, queue.Len())
}

func TestPriorityQueue_MinFirstStableTies(t *testing.T) {
	queue := NewPriorityQueue[string]()
	queue.Push("c", 3)
	queue.Push("a1", 1)
	queue.Push("b", 2)
	queue.Push("a2", 1)
	queue.Push("a3", 1)

	assert.Equal(t, []string{"a1", "a2", "a3", "b", "c"}, drainPriority(queue))
}

func TestPriorityQueue_Update(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		priority float64
		want     []string
	}{
		{name: "lower priority moves item forward", item: "c", priority: 0, want: []string{"c", "a", "b"}},
		{name: "higher priority is ignored", item: "a", priority: 10, want: []string{"a", "b", "c"}},
		{name: "absent item is pushed", item: "d", priority: 1.5, want: []string{"a", "d", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := NewPriorityQueue[string]()
			queue.Push("a", 1)
			queue.Push("b", 2)
			queue.Push("c", 3)

			queue.Update(tt.item, tt.priority)
			assert.Equal(t, tt.want, drainPriority(queue))
		})
	}
}

func TestPriorityQueue_DuplicatesAreKept(t *testing.T) {
	queue := NewPriorityQueue[string]()
	queue.Push("a", 5)
	queue.Push("a", 1)
	assert.Equal(t, 2, queue.Len())

	item, priority, ok := queue.PopWithPriority()
	require.True(t, ok)
	assert.Equal(t, "a", item)
	assert.Equal(t, 1.0, priority)

	_, priority, ok = queue.PopWithPriority()
	require.True(t, ok)
	assert.Equal(t, 5.0, priority)
	assert.True(t, queue.IsEmpty())
}

func TestPriorityQueue_IndexBuiltOnFirstUpdate(t *testing.T) {
	queue := NewPriorityQueue[string]()
	queue.Push("a", 5)
	queue.Push("b", 3)
	queue.Push("a", 4)
	_, _ = queue.Pop()
	assert.Nil(t, queue.index)

	// the latest copy of a (priority 4) is the one re-prioritized
	queue.Update("a", 1)
	require.NotNil(t, queue.index)

	item, priority, ok := queue.PopWithPriority()
	require.True(t, ok)
	assert.Equal(t, "a", item)
	assert.Equal(t, 1.0, priority)

	_, priority, ok = queue.PopWithPriority()
	require.True(t, ok)
	assert.Equal(t, 5.0, priority)
	assert.True(t, queue.IsEmpty())
}
