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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEditScriptViews(t *testing.T) {
	s := Diff(strings.Split("ABCABBA", ""), strings.Split("CBABAC", ""))

	wantDeletes := []Edit[string]{
		{Delete, 5, "B"},
		{Delete, 1, "B"},
		{Delete, 0, "A"},
	}
	if diff := cmp.Diff(wantDeletes, s.Deletes()); diff != "" {
		t.Errorf("Deletes result is different [-want, +got]:\n%s", diff)
	}

	wantInserts := []Edit[string]{
		{Insert, 1, "B"},
		{Insert, 5, "C"},
	}
	if diff := cmp.Diff(wantInserts, s.Inserts()); diff != "" {
		t.Errorf("Inserts result is different [-want, +got]:\n%s", diff)
	}

	if got, want := s.Len(), len(wantDeletes)+len(wantInserts); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestEditScriptReversed(t *testing.T) {
	x := []int{1, 2, 3}
	y := []int{1, 3, 2}

	got := Diff(x, y).Reversed()
	want := []Edit[int]{
		{Delete, 2, 2},
		{Insert, 1, 2},
	}
	if diff := cmp.Diff(want, got.Edits()); diff != "" {
		t.Errorf("Reversed result is different [-want, +got]:\n%s", diff)
	}

	if empty := Diff(x, x).Reversed(); empty.Len() != 0 {
		t.Errorf("Reversed of empty script has %d edits, want 0", empty.Len())
	}
}

func TestEditScriptString(t *testing.T) {
	s := Diff([]int{1, 2, 3}, []int{1, 3, 2})
	if got, want := s.String(), "[-2@1 +2@2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Diff([]int(nil), nil).String(), "[]"; got != want {
		t.Errorf("String() of empty script = %q, want %q", got, want)
	}
}

func TestApplyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Apply with a mismatched script did not panic")
		}
	}()
	s := Diff([]int{1, 2, 3}, []int{1})
	s.Apply([]int{1}) // script was derived for [1 2 3]
}
