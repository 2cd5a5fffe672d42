/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package chain implements an append-only history of values.
//
// Every commit creates a new most recent entry linked to the previous one:
//
//	root                                 head
//	x0 <-- x1 <-- x2 <-- ... <-- x(n-2) <-- x(n-1)
//
// Reads walk the links back from the head, so looking up the value
// committed "by" steps ago costs O(by). Entries are never removed.
//
// A Chain is not safe for concurrent use. Callers sharing one across
// goroutines must guard the whole Chain.
package chain

// Chain is a linear history of commits. The zero value is an empty chain
// ready to use.
type Chain[T any] struct {
	// root anchors the oldest entry.
	root *Node[T]
	head *Node[T]
	size int
}

// New returns an empty chain.
func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Commit appends value as the most recent entry.
func (c *Chain[T]) Commit(value T) {
	if c.size == 0 {
		c.root = newNode[T](nil, value)
		c.head = c.root
	} else {
		c.head = newNode(c.head, value)
	}
	c.size++
}

// Head returns the most recently committed value. The boolean is false
// if nothing has been committed yet.
func (c *Chain[T]) Head() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	return c.head.Value(), true
}

// Older returns the value committed by steps before the head, so
// Older(0) is the head itself and Older(1) the one before it.
//
// It fails with a *NotEnoughElementsError whenever by is not lower than
// the chain size. Unlike Head, this includes Older(0) on an empty chain.
func (c *Chain[T]) Older(by int) (T, error) {
	if by < 0 || by >= c.size {
		var zero T
		return zero, &NotEnoughElementsError{Have: c.size, Asked: by}
	}

	node := c.head
	for i := by; i > 0; i-- {
		node = node.Predecessor()
	}
	return node.Value(), nil
}

// Size returns the number of committed entries.
func (c *Chain[T]) Size() int {
	return c.size
}

// Empty reports whether nothing has been committed yet.
func (c *Chain[T]) Empty() bool {
	return c.size == 0
}
