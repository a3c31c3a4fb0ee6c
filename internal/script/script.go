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

// Package script contains the internal edit script representation that's produced by backtracking
// through the LCS table and is then translated to a user facing API.
//
// Ops carry positions only: a delete position refers to the first input, an insert position to the
// second. The caller attaches element values.
package script

import (
	"fmt"
	"slices"

	"znkr.io/lcsdiff/internal/table"
)

// Kind discriminates between the two edit operations.
type Kind uint8

const (
	Delete Kind = iota
	Insert
)

func (k Kind) String() string {
	switch k {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(k))
	}
}

// Op is a single edit operation. For Delete, Index addresses the first input sequence; for Insert,
// it addresses the second.
type Op struct {
	Kind  Kind
	Index int
}

// Reconstruct backtracks through t and returns the minimal edit script transforming the first
// input into the second, in canonical order: all deletions by descending index, followed by all
// insertions by ascending index.
//
// Backtracking starts at (n, m) and tests, in this order: only insertions left, only deletions
// left, the insert branch t(i, j) == t(i, j-1), the delete branch t(i, j) == t(i-1, j), and
// finally the match branch. The branch order is fixed: it determines which of several equally
// minimal scripts is produced.
func Reconstruct(t table.Table) []Op {
	n, m := t.Dims()
	d := n + m - 2*t.CommonLen() // number of edits in a minimal script
	if d == 0 {
		return nil
	}
	ops := make([]Op, 0, d)
	ins := 0 // insertions accumulate at the tail of ops
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			ops = append(ops, Op{Insert, j - 1})
			ins++
			j--
		case j == 0:
			ops = append(ops, Op{Delete, i - 1})
			i--
		case t.At(i, j) == t.At(i, j-1):
			ops = append(ops, Op{Insert, j - 1})
			ins++
			j--
		case t.At(i, j) == t.At(i-1, j):
			ops = append(ops, Op{Delete, i - 1})
			i--
		default:
			// x[i-1] == y[j-1], part of the LCS.
			i--
			j--
		}
	}
	// The walk emits deletions in descending and insertions in descending index order, with
	// deletions and insertions interleaved. Canonical order wants deletions (descending) before
	// insertions (ascending); a stable partition preserves the per-kind order, then the insertion
	// block is reversed.
	slices.SortStableFunc(ops, func(a, b Op) int {
		return int(a.Kind) - int(b.Kind)
	})
	slices.Reverse(ops[len(ops)-ins:])
	return ops
}

// Subsequence backtracks through t and returns the indices into the first input of a longest
// common subsequence, in ascending order. eq reports whether x[i] equals y[j].
//
// When both non-match branches have equal table values, the walk follows (i, j-1). The tie-break
// is arbitrary but deterministic; different choices yield different, equally long subsequences.
func Subsequence(t table.Table, eq func(i, j int) bool) []int {
	if t.CommonLen() == 0 {
		return nil
	}
	idx := make([]int, 0, t.CommonLen())
	i, j := t.Dims()
	for i > 0 && j > 0 {
		switch {
		case eq(i-1, j-1):
			idx = append(idx, i-1)
			i--
			j--
		case t.At(i-1, j) > t.At(i, j-1):
			i--
		default:
			j--
		}
	}
	slices.Reverse(idx)
	return idx
}
