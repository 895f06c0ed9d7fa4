package linkedlist

import (
	"strings"

	fmt2 "github.com/kwonsjay/sjsjsds/fmt"
	"github.com/pkg/errors"
)

// Debug would print push/unshift/delete information
var Debug bool

var trace = fmt2.Tracer("linkedlist")

// LinkedList is a singly linked list tracking head, tail and size.
// Nodes are compared by identity in Has/Delete and by value in
// HasValue/FindByValue/DeleteValue. The zero value is an empty list.
// It is not safe for concurrent use.
type LinkedList[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Len return node count
func (l *LinkedList[T]) Len() int { return l.size }

func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// Head return first node, nil if empty
func (l *LinkedList[T]) Head() *Node[T] { return l.head }

// Tail return last node, nil if empty
func (l *LinkedList[T]) Tail() *Node[T] { return l.tail }

// Push appends node at the tail. The node's successor is cleared so the tail
// always ends the chain. A nil node is ignored.
func (l *LinkedList[T]) Push(node *Node[T]) {
	if node == nil {
		return
	}
	node.next = nil
	if l.tail == nil {
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		l.tail = node
	}
	l.size++
	if Debug {
		trace("Push %v size=%d", node.Value, l.size)
	}
}

// PushValue wraps value in a new node and appends it
func (l *LinkedList[T]) PushValue(value T) *Node[T] {
	n := NewNode(value)
	l.Push(n)
	return n
}

// Unshift prepends node at the head, a nil node is ignored
func (l *LinkedList[T]) Unshift(node *Node[T]) {
	if node == nil {
		return
	}
	if l.head == nil {
		node.next = nil
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head = node
	}
	l.size++
	if Debug {
		trace("Unshift %v size=%d", node.Value, l.size)
	}
}

// UnshiftValue wraps value in a new node and prepends it
func (l *LinkedList[T]) UnshiftValue(value T) *Node[T] {
	n := NewNode(value)
	l.Unshift(n)
	return n
}

// Has reports whether this very node is in the list
func (l *LinkedList[T]) Has(node *Node[T]) bool {
	if node == nil {
		return false
	}
	for p := l.head; p != nil; p = p.next {
		if p == node {
			return true
		}
	}
	return false
}

// HasValue reports whether any node holds value
func (l *LinkedList[T]) HasValue(value T) bool {
	return l.FindByValue(value) != nil
}

// FindByValue returns the first node holding value, nil if absent
func (l *LinkedList[T]) FindByValue(value T) *Node[T] {
	for p := l.head; p != nil; p = p.next {
		if p.Value == value {
			return p
		}
	}
	return nil
}

// Delete removes node if it belongs to the list, otherwise it is a no-op.
//
// A node in the middle of the chain is removed by taking over its successor:
// the successor's value is copied into node and the successor is unlinked.
// References to node therefore stay valid but observe the next value.
func (l *LinkedList[T]) Delete(node *Node[T]) {
	var removed T
	switch {
	case l.size == 0:
		return
	case l.size == 1:
		if node != l.head {
			return
		}
		removed = node.Value
		l.head = nil
		l.tail = nil
	case node == l.head:
		removed = node.Value
		l.head = node.next
		node.next = nil
	case node == l.tail:
		removed = node.Value
		p := l.head
		for p.next.next != nil {
			p = p.next
		}
		p.next = nil
		l.tail = p
	default:
		if !l.Has(node) {
			return
		}
		victim := node.next
		removed = victim.Value
		node.Value = victim.Value
		node.next = victim.next
		victim.next = nil
		if victim == l.tail {
			l.tail = node
		}
	}
	l.size--
	if Debug {
		trace("Delete %v size=%d", removed, l.size)
	}
}

// DeleteValue removes the first node holding value
func (l *LinkedList[T]) DeleteValue(value T) {
	if l.size == 0 {
		return
	}
	if n := l.FindByValue(value); n != nil {
		l.Delete(n)
	}
}

// Clear drop all nodes
func (l *LinkedList[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.tail = nil
	l.size = 0
}

// Each walks nodes from head to tail until fn returns false
func (l *LinkedList[T]) Each(fn func(*Node[T]) bool) {
	for p := l.head; p != nil; {
		next := p.next
		if !fn(p) {
			return
		}
		p = next
	}
}

// Values copy values from head to tail
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for p := l.head; p != nil; p = p.next {
		out = append(out, p.Value)
	}
	return out
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	for p := l.head; p != nil; p = p.next {
		sb.WriteString(p.String())
		if p.next != nil {
			sb.WriteString("->")
		}
	}
	return sb.String()
}

// Check verifies head, tail and size agree with the chain
func (l *LinkedList[T]) Check() error {
	if l.size == 0 {
		if l.head != nil || l.tail != nil {
			return errors.New("empty list should have neither head nor tail")
		}
		return nil
	}
	if l.head == nil || l.tail == nil {
		return errors.Errorf("list of size %d lost head or tail", l.size)
	}
	if l.size == 1 && l.head != l.tail {
		return errors.New("single node list should have head == tail")
	}
	if l.tail.next != nil {
		return errors.New("tail should end the chain")
	}
	steps, p := 0, l.head
	for p != l.tail {
		if p.next == nil || steps >= l.size {
			return errors.Errorf("tail unreachable from head within %d steps", l.size-1)
		}
		p = p.next
		steps++
	}
	if steps != l.size-1 {
		return errors.Errorf("head reaches tail in %d steps, expect %d", steps, l.size-1)
	}
	return nil
}
