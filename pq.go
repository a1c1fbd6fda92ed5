package search

import "container/heap"

type priorityQueueItem[T comparable] struct {
	Item         T
	Priority     float64
	Sequence     uint64
	IndexInQueue int
}

// priorityHeap implements heap.Interface. Equal priorities pop in insertion
// order so searches stay deterministic.
type priorityHeap[T comparable] []*priorityQueueItem[T]

func (queue priorityHeap[T]) Len() int { return len(queue) }
func (queue priorityHeap[T]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue priorityHeap[T]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityHeap[T]) Push(x any) {
	item := x.(*priorityQueueItem[T])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityHeap[T]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// PriorityQueue pops the item with the minimum priority, ties broken by
// insertion order. Pushing an item already queued adds a duplicate entry;
// use Update to re-prioritize in place instead.
type PriorityQueue[T comparable] struct {
	heap priorityHeap[T]
	// index is built on the first Update and maintained from then on, so
	// Push/Pop-only callers never pay for it.
	index    map[T]*priorityQueueItem[T]
	sequence uint64
}

// NewPriorityQueue returns an empty min-priority frontier.
func NewPriorityQueue[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Push adds item with the given priority.
func (queue *PriorityQueue[T]) Push(item T, priority float64) {
	entry := &priorityQueueItem[T]{Item: item, Priority: priority, Sequence: queue.sequence}
	queue.sequence++
	heap.Push(&queue.heap, entry)
	if queue.index != nil {
		queue.index[item] = entry
	}
}

// buildIndex maps every queued item to its most recently pushed entry.
func (queue *PriorityQueue[T]) buildIndex() {
	queue.index = make(map[T]*priorityQueueItem[T], len(queue.heap))
	for _, entry := range queue.heap {
		if current, ok := queue.index[entry.Item]; !ok || entry.Sequence > current.Sequence {
			queue.index[entry.Item] = entry
		}
	}
}

// Update lowers the priority of a queued item, or pushes it when absent.
// A priority that is not lower than the queued one is ignored.
func (queue *PriorityQueue[T]) Update(item T, priority float64) {
	if queue.index == nil {
		queue.buildIndex()
	}
	entry, ok := queue.index[item]
	if !ok {
		queue.Push(item, priority)
		return
	}
	if priority >= entry.Priority {
		return
	}
	entry.Priority = priority
	heap.Fix(&queue.heap, entry.IndexInQueue)
}

// Pop removes and returns the minimum-priority item.
func (queue *PriorityQueue[T]) Pop() (T, bool) {
	item, _, ok := queue.PopWithPriority()
	return item, ok
}

// PopWithPriority is Pop that also reports the priority the item was queued at.
func (queue *PriorityQueue[T]) PopWithPriority() (T, float64, bool) {
	var zero T
	if queue.heap.Len() == 0 {
		return zero, 0, false
	}
	entry := heap.Pop(&queue.heap).(*priorityQueueItem[T])
	if queue.index != nil && queue.index[entry.Item] == entry {
		delete(queue.index, entry.Item)
	}
	return entry.Item, entry.Priority, true
}

func (queue *PriorityQueue[T]) IsEmpty() bool { return queue.heap.Len() == 0 }
func (queue *PriorityQueue[T]) Len() int      { return queue.heap.Len() }
