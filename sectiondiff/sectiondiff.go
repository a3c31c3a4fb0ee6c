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

// Package sectiondiff generalizes [znkr.io/lcsdiff] to sectioned data: an ordered sequence of
// sections, each an ordered sequence of rows, as found in grouped list UIs.
//
// [Diff] compares two section sequences and returns edits addressed by (section, row)
// coordinates: row-level insertions and deletions plus section-level insertions and deletions.
// [Apply] replays such edits against a section sequence.
//
// Internally, both inputs are flattened into one linear sequence in which every section
// contributes its rows followed by a single sentinel marker, and the flattened sequences are
// diffed with the 1D engine. All sentinels compare equal to each other; coordinates are
// recovered purely positionally, by counting sentinels in a running copy of the flattened source
// that is updated as the flat script is replayed. The sentinel scheme is an implementation
// detail and never visible to callers.
package sectiondiff

import (
	"fmt"
	"slices"

	"znkr.io/lcsdiff"
)

// Op describes a sectioned edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	RowDelete     Op = iota // A deletion of a single row from a section
	RowInsert               // An insertion of a single row into a section
	SectionDelete           // A deletion of a section boundary
	SectionInsert           // An insertion of a section boundary
)

// Edit describes a single edit of a sectioned diff.
//
//   - For RowDelete and RowInsert, Val is the affected row and (Section, Row) its coordinates.
//   - For SectionDelete, Section names the deleted section and Row and Val are unset. Any rows the
//     section held are deleted by separate RowDelete edits, so the section is empty by the time it
//     is removed; deleting a section that still holds rows merges them into the section after it.
//   - For SectionInsert, Section names the new section's index. Row is the number of rows of the
//     section already in place ahead of the new boundary: 0 inserts an empty section, a positive
//     value splits an existing section after Row rows.
//
// Edits are immutable once produced.
type Edit[T any] struct {
	Op           Op
	Section, Row int
	Val          T
}

// String renders the edit in a compact debug form, e.g. "-b@(0,1)" or "+section@2".
func (e Edit[T]) String() string {
	switch e.Op {
	case RowDelete:
		return fmt.Sprintf("-%v@(%d,%d)", e.Val, e.Section, e.Row)
	case RowInsert:
		return fmt.Sprintf("+%v@(%d,%d)", e.Val, e.Section, e.Row)
	case SectionDelete:
		return fmt.Sprintf("-section@%d", e.Section)
	case SectionInsert:
		return fmt.Sprintf("+section@%d", e.Section)
	default:
		panic("never reached")
	}
}

// flat is the element type the 1D engine works on: either a row or a sentinel marking the end of
// a section. section records the source section index of a sentinel, for debugging only; equality
// and coordinate recovery never read it.
type flat[T any] struct {
	sentinel bool
	section  int
	val      T
}

func flatten[T any](sections [][]T) []flat[T] {
	n := len(sections)
	for _, rows := range sections {
		n += len(rows)
	}
	out := make([]flat[T], 0, n)
	for i, rows := range sections {
		for _, v := range rows {
			out = append(out, flat[T]{val: v})
		}
		out = append(out, flat[T]{sentinel: true, section: i})
	}
	return out
}

// Diff compares the contents of x and y and returns the edits necessary to convert from one to
// the other, ordered so that [Apply] replays them with a single pass: deletions first, from the
// back of x forward, then insertions in y order.
//
// If x and y are identical, the output has length zero. The result is deterministic but when
// several minimal edit sequences exist the choice is unspecified; DO NOT rely on it being stable
// across minor version upgrades.
func Diff[T comparable](x, y [][]T) []Edit[T] {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc compares the contents of x and y using the provided row equality comparison and
// returns the edits necessary to convert from one to the other.
//
// See [Diff] for the properties of the result.
func DiffFunc[T any](x, y [][]T, eq func(a, b T) bool) []Edit[T] {
	fx, fy := flatten(x), flatten(y)
	s := lcsdiff.DiffFunc(fx, fy, func(a, b flat[T]) bool {
		if a.sentinel || b.sentinel {
			return a.sentinel && b.sentinel
		}
		return eq(a.val, b.val)
	})
	if s.Len() == 0 {
		return nil
	}

	// Replay the flat script against a running copy of the flattened source, classifying each flat
	// operation into section coordinates before applying it. Applying as we go is what keeps the
	// positional lookups correct: by the time an insertion at index i is classified, the state
	// below i has already converged to the flattened target.
	state := slices.Clone(fx)
	out := make([]Edit[T], 0, s.Len())
	for _, e := range s.Edits() {
		switch e.Op {
		case lcsdiff.Delete:
			out = append(out, classify(state, e.Index, e.Val, false))
			state = slices.Delete(state, e.Index, e.Index+1)
		case lcsdiff.Insert:
			out = append(out, classify(state, e.Index, e.Val, true))
			state = slices.Insert(state, e.Index, e.Val)
		default:
			panic("never reached")
		}
	}
	return out
}

// classify maps a flat operation at index i in state to section coordinates. The section index is
// the number of sentinels ahead of i; the row is the distance to the nearest preceding sentinel,
// or i itself if none exists. Sentinel values yield section boundary edits, rows yield row edits.
func classify[T any](state []flat[T], i int, v flat[T], insert bool) Edit[T] {
	nsent, last := 0, -1
	for q := range i {
		if state[q].sentinel {
			nsent++
			last = q
		}
	}
	switch {
	case v.sentinel && insert:
		return Edit[T]{Op: SectionInsert, Section: nsent, Row: i - last - 1}
	case v.sentinel:
		return Edit[T]{Op: SectionDelete, Section: nsent}
	case insert:
		return Edit[T]{Op: RowInsert, Section: nsent, Row: i - last - 1, Val: v.val}
	default:
		return Edit[T]{Op: RowDelete, Section: nsent, Row: i - last - 1, Val: v.val}
	}
}

// Apply applies edits to x and returns the resulting section sequence. x itself is never
// modified.
//
// For any x and y, Apply(x, Diff(x, y)) is equal to y section by section and row by row.
// Applying edits that were not produced for this exact x is a programmer error: Apply panics
// with an explicit message rather than silently producing a corrupt result.
func Apply[T any](x [][]T, edits []Edit[T]) [][]T {
	state := flatten(x)
	for _, e := range edits {
		switch e.Op {
		case RowDelete:
			i := rowPos(state, e.Section, e.Row)
			if i >= len(state) || state[i].sentinel {
				panic(fmt.Sprintf("sectiondiff: edits do not match input: no row at (%d,%d)", e.Section, e.Row))
			}
			state = slices.Delete(state, i, i+1)
		case RowInsert:
			i := rowPos(state, e.Section, e.Row)
			state = slices.Insert(state, i, flat[T]{val: e.Val})
		case SectionDelete:
			i := sentinelPos(state, e.Section)
			state = slices.Delete(state, i, i+1)
		case SectionInsert:
			i := rowPos(state, e.Section, e.Row)
			state = slices.Insert(state, i, flat[T]{sentinel: true, section: e.Section})
		default:
			panic(fmt.Sprintf("sectiondiff: unknown op %v", e.Op))
		}
	}
	return unflatten(state)
}

// rowPos returns the flat position of row r of section s: the position after the s-th sentinel,
// plus r. Sections are counted positionally, exactly as classify counts them.
func rowPos[T any](state []flat[T], s, r int) int {
	start := 0
	if s > 0 {
		start = sentinelPos(state, s-1) + 1
	}
	i := start + r
	if i > len(state) {
		panic(fmt.Sprintf("sectiondiff: edits do not match input: position (%d,%d) out of range", s, r))
	}
	return i
}

// sentinelPos returns the flat position of the sentinel closing section s.
func sentinelPos[T any](state []flat[T], s int) int {
	seen := 0
	for q, f := range state {
		if f.sentinel {
			if seen == s {
				return q
			}
			seen++
		}
	}
	panic(fmt.Sprintf("sectiondiff: edits do not match input: no section %d", s))
}

func unflatten[T any](state []flat[T]) [][]T {
	var out [][]T
	rows := []T{}
	for _, f := range state {
		if f.sentinel {
			out = append(out, rows)
			rows = []T{}
		} else {
			rows = append(rows, f.val)
		}
	}
	// A trailing chunk without a closing sentinel only exists while edits are mid-replay; a fully
	// replayed state always ends on a sentinel.
	if len(rows) > 0 {
		out = append(out, rows)
	}
	return out
}
