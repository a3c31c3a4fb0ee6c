// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table builds the dynamic programming table at the heart of the LCS algorithm.
//
// For inputs x and y of lengths n and m, the table maps every prefix pair (i, j) ∈ [0, n] × [0, m]
// to the length of the longest common subsequence of x[:i] and y[:j]:
//
//	t(i, 0) = t(0, j) = 0
//	t(i, j) = t(i-1, j-1) + 1             if x[i-1] == y[j-1]
//	t(i, j) = max(t(i-1, j), t(i, j-1))   otherwise
//
// Construction is O(n·m) in time and space and never fails; empty inputs yield a degenerate table.
// A table is valid only for the pair of inputs it was built from and is meant to be discarded after
// reconstruction.
package table

// Table is the (n+1)×(m+1) LCS length table for a pair of sequences.
//
// The values are stored in a single flat row-major allocation.
type Table struct {
	n, m int
	v    []int
}

// New builds the table for x and y.
func New[T comparable](x, y []T) Table {
	return NewFunc(x, y, func(a, b T) bool { return a == b })
}

// NewFunc builds the table for x and y using the provided equality comparison.
func NewFunc[T any](x, y []T, eq func(a, b T) bool) Table {
	n, m := len(x), len(y)
	t := Table{
		n: n,
		m: m,
		v: make([]int, (n+1)*(m+1)),
	}
	// Row-major order respects the recurrence's dependency on (i-1, j-1), (i-1, j), and (i, j-1).
	// Row 0 and column 0 stay zero.
	for i := 1; i <= n; i++ {
		row, prev := t.v[i*(m+1):], t.v[(i-1)*(m+1):]
		for j := 1; j <= m; j++ {
			if eq(x[i-1], y[j-1]) {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}
	return t
}

// At returns the LCS length for the prefix pair (i, j).
func (t Table) At(i, j int) int {
	return t.v[i*(t.m+1)+j]
}

// Dims returns the input lengths n and m the table was built for.
func (t Table) Dims() (n, m int) {
	return t.n, t.m
}

// CommonLen returns the length of the longest common subsequence of the two inputs.
func (t Table) CommonLen() int {
	return t.At(t.n, t.m)
}
