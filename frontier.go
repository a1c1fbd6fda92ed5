package search

// Frontier is an ordered container of items awaiting expansion.
// Implementations differ only in the order Pop returns items.
type Frontier[T any] interface {
	Push(item T)
	// Pop removes and returns the next item; ok is false when empty.
	Pop() (item T, ok bool)
	IsEmpty() bool
	Len() int
}

// Stack pops the most recently pushed item first.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty LIFO frontier.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

func (stack *Stack[T]) Push(item T) { stack.items = append(stack.items, item) }

func (stack *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(stack.items)
	if n == 0 {
		return zero, false
	}
	item := stack.items[n-1]
	stack.items[n-1] = zero
	stack.items = stack.items[:n-1]
	return item, true
}

func (stack *Stack[T]) IsEmpty() bool { return len(stack.items) == 0 }
func (stack *Stack[T]) Len() int      { return len(stack.items) }

// Queue pops the earliest pushed item first.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

func (queue *Queue[T]) Push(item T) { queue.items = append(queue.items, item) }

func (queue *Queue[T]) Pop() (T, bool) {
	var zero T
	if queue.head == len(queue.items) {
		return zero, false
	}
	item := queue.items[queue.head]
	queue.items[queue.head] = zero
	queue.head++
	// reclaim the consumed prefix once it dominates the backing array
	if queue.head > 32 && queue.head*2 >= len(queue.items) {
		queue.items = append(queue.items[:0], queue.items[queue.head:]...)
		queue.head = 0
	}
	return item, true
}

func (queue *Queue[T]) IsEmpty() bool { return queue.Len() == 0 }
func (queue *Queue[T]) Len() int      { return len(queue.items) - queue.head }
