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
	"slices"
	"strings"
)

// EditScript is an ordered collection of edits transforming a source slice into a target slice.
//
// Scripts are normalized to canonical order: all deletions sorted by descending index, followed by
// all insertions sorted by ascending index. This order makes [EditScript.Apply] a single
// front-to-back pass: deletions from high to low index never invalidate the indices of deletions
// still to be processed, and once all deletions are done, insertion indices address the target
// slice and are valid as-is when items are inserted left to right.
//
// The zero value is the empty script. Scripts are immutable; modifying the slice returned by
// [EditScript.Edits] results in undefined behavior.
type EditScript[T any] struct {
	edits []Edit[T]
}

// Edits returns the script's edits in canonical order. The returned slice is shared with the
// script and must not be modified.
func (s EditScript[T]) Edits() []Edit[T] {
	return s.edits
}

// Len returns the number of edits in the script.
func (s EditScript[T]) Len() int {
	return len(s.edits)
}

// Deletes returns the script's deletions, sorted by descending index.
func (s EditScript[T]) Deletes() []Edit[T] {
	// Canonical order keeps all deletions at the front.
	i := 0
	for i < len(s.edits) && s.edits[i].Op == Delete {
		i++
	}
	return slices.Clone(s.edits[:i])
}

// Inserts returns the script's insertions, sorted by ascending index.
func (s EditScript[T]) Inserts() []Edit[T] {
	i := 0
	for i < len(s.edits) && s.edits[i].Op == Delete {
		i++
	}
	return slices.Clone(s.edits[i:])
}

// Apply applies the script to x and returns the resulting slice. x itself is never modified.
//
// For any x and y, Diff(x, y).Apply(x) is elementwise equal to y. Applying a script to a slice it
// was not derived from is a programmer error: Apply panics with an explicit message rather than
// silently producing a corrupt result.
func (s EditScript[T]) Apply(x []T) []T {
	out := slices.Clone(x)
	for _, e := range s.edits {
		switch e.Op {
		case Delete:
			if e.Index < 0 || e.Index >= len(out) {
				panic(fmt.Sprintf("lcsdiff: script does not match input: delete at %d, sequence length %d", e.Index, len(out)))
			}
			out = slices.Delete(out, e.Index, e.Index+1)
		case Insert:
			if e.Index < 0 || e.Index > len(out) {
				panic(fmt.Sprintf("lcsdiff: script does not match input: insert at %d, sequence length %d", e.Index, len(out)))
			}
			out = slices.Insert(out, e.Index, e.Val)
		default:
			panic("never reached")
		}
	}
	return out
}

// Reversed returns the script that undoes s: every deletion becomes an insertion and vice versa,
// with index and value preserved, re-normalized into canonical order.
//
// For any x and y, Diff(x, y).Reversed().Apply(y) is elementwise equal to x.
func (s EditScript[T]) Reversed() EditScript[T] {
	if len(s.edits) == 0 {
		return EditScript[T]{}
	}
	edits := make([]Edit[T], len(s.edits))
	for i, e := range s.edits {
		switch e.Op {
		case Delete:
			e.Op = Insert
		case Insert:
			e.Op = Delete
		default:
			panic("never reached")
		}
		edits[i] = e
	}
	canonicalize(edits)
	return EditScript[T]{edits: edits}
}

// String renders the script as its edits in canonical order, e.g. "[-b@1 +d@2]".
func (s EditScript[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s.edits {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// canonicalize sorts edits into canonical order: deletions by descending index, then insertions
// by ascending index, with every deletion before every insertion.
func canonicalize[T any](edits []Edit[T]) {
	slices.SortStableFunc(edits, func(a, b Edit[T]) int {
		switch {
		case a.Op != b.Op:
			if a.Op == Delete {
				return -1
			}
			return 1
		case a.Op == Delete:
			return b.Index - a.Index
		default:
			return a.Index - b.Index
		}
	})
}
