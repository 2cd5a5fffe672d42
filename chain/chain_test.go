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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeadIsAbsent(t *testing.T) {
	chain := New[int]()

	_, ok := chain.Head()
	require.False(t, ok, "A new chain should not have a head")
	require.True(t, chain.Empty())
}

func TestZeroValueChainIsEmpty(t *testing.T) {
	var chain Chain[string]

	_, ok := chain.Head()
	require.False(t, ok)

	chain.Commit("a")
	head, ok := chain.Head()
	require.True(t, ok)
	require.Equal(t, "a", head)
}

func TestCommit(t *testing.T) {

	testCases := []struct {
		commits      []int
		expectedHead int
	}{
		{commits: []int{1}, expectedHead: 1},
		{commits: []int{1, 2}, expectedHead: 2},
		{commits: []int{1, 2, 3}, expectedHead: 3},
		{commits: []int{3, 3, 3}, expectedHead: 3},
		{commits: []int{0, -7}, expectedHead: -7},
	}

	for i, c := range testCases {
		chain := New[int]()
		for j, v := range c.commits {
			chain.Commit(v)
			require.Equalf(t, j+1, chain.Size(), "The size should grow by one for test case %d", i)
		}

		head, ok := chain.Head()
		require.Truef(t, ok, "The chain should have a head for test case %d", i)
		assert.Equalf(t, c.expectedHead, head, "Incorrect head for test case %d", i)
	}

}

func TestOlder(t *testing.T) {

	chain := New[int]()
	for v := 1; v <= 4; v++ {
		chain.Commit(v)
	}

	testCases := []struct {
		by            int
		expectedValue int
		expectedErr   error
	}{
		{by: 0, expectedValue: 4},
		{by: 1, expectedValue: 3},
		{by: 2, expectedValue: 2},
		{by: 3, expectedValue: 1},
		{by: 4, expectedErr: &NotEnoughElementsError{Have: 4, Asked: 4}},
		{by: 10, expectedErr: &NotEnoughElementsError{Have: 4, Asked: 10}},
		{by: -1, expectedErr: &NotEnoughElementsError{Have: 4, Asked: -1}},
	}

	for i, c := range testCases {
		value, err := chain.Older(c.by)
		if c.expectedErr != nil {
			require.Errorf(t, err, "Older should fail for test case %d", i)
			assert.Equalf(t, c.expectedErr, err, "Incorrect error for test case %d", i)
			continue
		}
		require.NoErrorf(t, err, "Older should not fail for test case %d", i)
		assert.Equalf(t, c.expectedValue, value, "Incorrect value for test case %d", i)
	}

}

func TestOlderOnEmptyChain(t *testing.T) {

	t.Run("depth zero fails even though head is absent", func(t *testing.T) {
		chain := New[int]()
		_, err := chain.Older(0)
		require.Equal(t, &NotEnoughElementsError{Have: 0, Asked: 0}, err)
	})

	t.Run("depth one fails", func(t *testing.T) {
		chain := New[int]()
		_, err := chain.Older(1)
		require.Equal(t, &NotEnoughElementsError{Have: 0, Asked: 1}, err)
	})

}

func TestOlderBeyondSingleCommit(t *testing.T) {
	chain := New[int]()
	chain.Commit(1)

	_, err := chain.Older(1)
	require.Equal(t, &NotEnoughElementsError{Have: 1, Asked: 1}, err)
}

func TestOlderMatchesCommitOrder(t *testing.T) {
	const n = 100

	chain := New[int]()
	for v := 0; v < n; v++ {
		chain.Commit(v * v)
	}

	for k := 0; k < n; k++ {
		value, err := chain.Older(k)
		require.NoError(t, err)
		require.Equalf(t, (n-1-k)*(n-1-k), value, "Incorrect value at depth %d", k)
	}

	for by := n; by < n+5; by++ {
		_, err := chain.Older(by)
		require.Equal(t, &NotEnoughElementsError{Have: n, Asked: by}, err)
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	chain := New[string]()
	chain.Commit("first")
	chain.Commit("second")

	for i := 0; i < 3; i++ {
		head, ok := chain.Head()
		require.True(t, ok)
		require.Equal(t, "second", head)

		older, err := chain.Older(1)
		require.NoError(t, err)
		require.Equal(t, "first", older)
	}
	require.Equal(t, 2, chain.Size())
}

func TestHeadAgreesWithOlderZero(t *testing.T) {
	chain := New[float64]()
	for _, v := range []float64{0.5, 1.5, 2.5} {
		chain.Commit(v)

		head, ok := chain.Head()
		require.True(t, ok)
		older, err := chain.Older(0)
		require.NoError(t, err)
		require.Equal(t, head, older)
		require.Equal(t, v, head)
	}
}

func TestValuesAreCopies(t *testing.T) {
	type point struct{ x, y int }

	chain := New[point]()
	p := point{1, 2}
	chain.Commit(p)
	p.x = 10

	head, _ := chain.Head()
	require.Equal(t, point{1, 2}, head)

	head.y = 20
	again, _ := chain.Head()
	require.Equal(t, point{1, 2}, again)
}

func TestLinksReachRoot(t *testing.T) {
	chain := New[int]()
	for v := 0; v < 10; v++ {
		chain.Commit(v)
	}

	node := chain.head
	for i := 0; i < chain.Size()-1; i++ {
		node = node.Predecessor()
	}
	require.Same(t, chain.root, node, "Following size-1 links from head should reach root")
	require.Nil(t, node.Predecessor(), "Root should not have a predecessor")
}

func TestNotEnoughElementsError(t *testing.T) {
	chain := New[int]()
	_, err := chain.Older(3)

	require.True(t, errors.Is(err, ErrNotEnoughElements))
	require.EqualError(t, err, "chain only has 0 elements, requested 3")

	var target *NotEnoughElementsError
	require.True(t, errors.As(err, &target))
	require.Equal(t, 0, target.Have)
	require.Equal(t, 3, target.Asked)

	require.False(t, errors.Is(errors.New("other"), ErrNotEnoughElements))
}

func BenchmarkCommit(b *testing.B) {
	chain := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Commit(i)
	}
}

func BenchmarkOlder(b *testing.B) {
	chain := New[int]()
	for i := 0; i < 1024; i++ {
		chain.Commit(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = chain.Older(i % 1024)
	}
}
