// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package heap

import "container/heap"

var _ heap.Interface = (*indexedQueue[int, int])(nil)

// NewMap returns a heap of keys ordered by their values.
func NewMap[K comparable, V any](less func(a, b V) bool) Map[K, V] {
	return Map[K, V]{
		queue: &indexedQueue[K, V]{
			index: make(map[K]int),
			less:  less,
		},
	}
}

type Map[K comparable, V any] struct {
	queue *indexedQueue[K, V]
}

// Push adds [k] with value [v], replacing any previous value for [k].
// Returns the replaced value, if there was one.
func (m Map[K, V]) Push(k K, v V) (V, bool) {
	if i, ok := m.queue.index[k]; ok {
		prev := m.queue.entries[i].v
		m.queue.entries[i].v = v
		heap.Fix(m.queue, i)
		return prev, true
	}
	heap.Push(m.queue, entry[K, V]{k: k, v: v})
	var zero V
	return zero, false
}

// Pop removes and returns the top of the heap.
func (m Map[K, V]) Pop() (K, V, bool) {
	if m.Len() == 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	popped := heap.Pop(m.queue).(entry[K, V])
	return popped.k, popped.v, true
}

// Peek returns the top of the heap without removing it.
func (m Map[K, V]) Peek() (K, V, bool) {
	if m.Len() == 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	top := m.queue.entries[0]
	return top.k, top.v, true
}

// Get returns the value for [k] if it is in the heap.
func (m Map[K, V]) Get(k K) (V, bool) {
	if i, ok := m.queue.index[k]; ok {
		return m.queue.entries[i].v, true
	}
	var zero V
	return zero, false
}

// Contains returns true if [k] is in the heap.
func (m Map[K, V]) Contains(k K) bool {
	_, ok := m.queue.index[k]
	return ok
}

// Remove deletes [k] from the heap, returning its value if it was present.
func (m Map[K, V]) Remove(k K) (K, V, bool) {
	i, ok := m.queue.index[k]
	if !ok {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	removed := heap.Remove(m.queue, i).(entry[K, V])
	return removed.k, removed.v, true
}

// Fix restores heap ordering after the value for [k] changed in place.
func (m Map[K, V]) Fix(k K) {
	if i, ok := m.queue.index[k]; ok {
		heap.Fix(m.queue, i)
	}
}

func (m Map[K, V]) Len() int {
	return m.queue.Len()
}

type entry[K comparable, V any] struct {
	k K
	v V
}

// indexedQueue implements heap.Interface, tracking each key's position so
// that Remove and Fix are O(log n).
type indexedQueue[K comparable, V any] struct {
	entries []entry[K, V]
	index   map[K]int
	less    func(a, b V) bool
}

func (q *indexedQueue[K, V]) Len() int {
	return len(q.entries)
}

func (q *indexedQueue[K, V]) Less(i, j int) bool {
	return q.less(q.entries[i].v, q.entries[j].v)
}

func (q *indexedQueue[K, V]) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.index[q.entries[i].k] = i
	q.index[q.entries[j].k] = j
}

func (q *indexedQueue[K, V]) Push(e any) {
	ent := e.(entry[K, V])
	q.index[ent.k] = len(q.entries)
	q.entries = append(q.entries, ent)
}

func (q *indexedQueue[K, V]) Pop() any {
	last := len(q.entries) - 1
	popped := q.entries[last]
	q.entries[last] = entry[K, V]{}
	q.entries = q.entries[:last]
	delete(q.index, popped.k)
	return popped
}
