package linkedlist

import (
	"fmt"
)

// Node is an element of a LinkedList. The successor link belongs to the list
// holding the node, so only the list rewires it.
type Node[T comparable] struct {
	Value T
	next  *Node[T]
}

// NewNode creates a node, next is an optional successor
func NewNode[T comparable](value T, next ...*Node[T]) *Node[T] {
	n := &Node[T]{Value: value}
	if len(next) > 0 {
		n.next = next[0]
	}
	return n
}

// Next returns the successor or nil
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) String() string {
	if n.next == nil {
		return fmt.Sprintf("(value: %v, next: nil)", n.Value)
	}
	return fmt.Sprintf("(value: %v, next: %v)", n.Value, n.next.Value)
}
