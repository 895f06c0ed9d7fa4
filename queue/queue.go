package queue

import (
	fmt2 "github.com/kwonsjay/sjsjsds/fmt"
	"github.com/kwonsjay/sjsjsds/fp"
	"github.com/kwonsjay/sjsjsds/linkedlist"
)

// Debug would print enqueue/dequeue information
var Debug bool

var trace = fmt2.Tracer("queue")

// Queue is a FIFO queue on top of a singly linked list.
// The zero value is an empty queue.
type Queue[T comparable] struct {
	data linkedlist.LinkedList[T]
}

func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds value to the end of queue
func (q *Queue[T]) Enqueue(value T) {
	q.data.PushValue(value)
	if Debug {
		trace("Enqueue %v", value)
	}
}

// Dequeue removes the front element, None if queue is empty
func (q *Queue[T]) Dequeue() fp.Option[T] {
	v := q.Peek()
	q.data.Delete(q.data.Head())
	if Debug && v.IsSome() {
		trace("Dequeue %v", v.Val())
	}
	return v
}

// Peek returns the front element without dequeueing it, None if queue is empty
func (q *Queue[T]) Peek() fp.Option[T] {
	if head := q.data.Head(); head != nil {
		return fp.Some(head.Value)
	}
	return fp.None[T]()
}

// List exposes the list holding the queue, head first
func (q *Queue[T]) List() *linkedlist.LinkedList[T] {
	return &q.data
}

// Length of queue
func (q *Queue[T]) Length() int {
	return q.data.Len()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.data.IsEmpty()
}

// Values from front to back
func (q *Queue[T]) Values() []T {
	return q.data.Values()
}

func (q *Queue[T]) String() string {
	return q.data.String()
}

func (q *Queue[T]) MarshalJSON() ([]byte, error) {
	return q.data.MarshalJSON()
}

func (q *Queue[T]) UnmarshalJSON(data []byte) error {
	return q.data.UnmarshalJSON(data)
}
