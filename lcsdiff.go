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

package lcsdiff

import (
	"fmt"

	"znkr.io/lcsdiff/internal/script"
	"znkr.io/lcsdiff/internal/table"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Delete Op = iota // A deletion of an element of the source slice
	Insert           // An insertion of an element of the target slice
)

// Edit describes a single edit of a diff.
//
//   - For Delete, Index is the element's position in the source slice and Val the deleted element.
//   - For Insert, Index is the element's position in the target slice and Val the inserted element.
//
// Edits are immutable once produced.
type Edit[T any] struct {
	Op    Op
	Index int
	Val   T
}

// String renders the edit in the compact form "-val@index" or "+val@index".
func (e Edit[T]) String() string {
	sign := "-"
	if e.Op == Insert {
		sign = "+"
	}
	return fmt.Sprintf("%s%v@%d", sign, e.Val, e.Index)
}

// Diff compares the contents of x and y and returns the minimal edit script that transforms x
// into y.
//
// If x and y are identical, the script is empty. The script is in canonical order (see
// [EditScript]) and always contains exactly len(x) + len(y) - 2·len(LCS(x, y)) edits.
//
// When several minimal scripts exist, the one returned is deterministic but otherwise
// unspecified. DO NOT rely on the choice being stable across minor version upgrades.
func Diff[T comparable](x, y []T) EditScript[T] {
	return scriptOf(x, y, table.New(x, y))
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns
// the minimal edit script that transforms x into y.
//
// See [Diff] for the properties of the result.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) EditScript[T] {
	return scriptOf(x, y, table.NewFunc(x, y, eq))
}

func scriptOf[T any](x, y []T, t table.Table) EditScript[T] {
	ops := script.Reconstruct(t)
	if len(ops) == 0 {
		return EditScript[T]{}
	}
	edits := make([]Edit[T], len(ops))
	for i, op := range ops {
		switch op.Kind {
		case script.Delete:
			edits[i] = Edit[T]{Op: Delete, Index: op.Index, Val: x[op.Index]}
		case script.Insert:
			edits[i] = Edit[T]{Op: Insert, Index: op.Index, Val: y[op.Index]}
		default:
			panic("never reached")
		}
	}
	return EditScript[T]{edits: edits}
}

// LCS returns the longest common subsequence of x and y: the longest (not necessarily
// contiguous) sequence of elements appearing in the same relative order in both slices.
//
// When several subsequences of maximal length exist, backtracking ties are broken towards
// elements later in x; e.g. LCS([1 2 3], [1 3 2]) is [1 3]. The choice is deterministic but DO
// NOT rely on it being stable across minor version upgrades.
func LCS[T comparable](x, y []T) []T {
	return LCSFunc(x, y, func(a, b T) bool { return a == b })
}

// LCSFunc returns the longest common subsequence of x and y using the provided equality
// comparison.
//
// See [LCS] for the tie-break behavior.
func LCSFunc[T any](x, y []T, eq func(a, b T) bool) []T {
	t := table.NewFunc(x, y, eq)
	idx := script.Subsequence(t, func(i, j int) bool { return eq(x[i], y[j]) })
	if len(idx) == 0 {
		return nil
	}
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = x[i]
	}
	return out
}
