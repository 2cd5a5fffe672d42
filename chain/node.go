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

package chain

// Node is an immutable history entry. It holds a single value and a link to
// the entry committed right before it, if any.
type Node[T any] struct {
	value       T
	predecessor *Node[T]
}

func newNode[T any](predecessor *Node[T], value T) *Node[T] {
	return &Node[T]{
		value:       value,
		predecessor: predecessor,
	}
}

// Value returns a copy of the stored value.
func (n *Node[T]) Value() T {
	return n.value
}

// Predecessor returns the previous entry or nil if n is the oldest one.
func (n *Node[T]) Predecessor() *Node[T] {
	return n.predecessor
}
