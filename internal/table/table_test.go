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

package table

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	x := []byte("ABCABBA")
	y := []byte("CBABAC")
	tab := New(x, y)

	n, m := tab.Dims()
	if n != len(x) || m != len(y) {
		t.Fatalf("Dims() = (%d, %d), want (%d, %d)", n, m, len(x), len(y))
	}

	for i := 0; i <= n; i++ {
		if got := tab.At(i, 0); got != 0 {
			t.Errorf("At(%d, 0) = %d, want 0", i, got)
		}
	}
	for j := 0; j <= m; j++ {
		if got := tab.At(0, j); got != 0 {
			t.Errorf("At(0, %d) = %d, want 0", j, got)
		}
	}

	// Every inner cell must satisfy the LCS recurrence.
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			want := max(tab.At(i-1, j), tab.At(i, j-1))
			if x[i-1] == y[j-1] {
				want = tab.At(i-1, j-1) + 1
			}
			if got := tab.At(i, j); got != want {
				t.Errorf("At(%d, %d) = %d, want %d", i, j, got, want)
			}
		}
	}

	if got := tab.CommonLen(); got != 4 {
		t.Errorf("CommonLen() = %d, want 4", got)
	}
}

func TestNewEmpty(t *testing.T) {
	tests := []struct {
		name string
		x, y []byte
	}{
		{"both-empty", nil, nil},
		{"x-empty", nil, []byte("abc")},
		{"y-empty", []byte("abc"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := New(tt.x, tt.y)
			if got := tab.CommonLen(); got != 0 {
				t.Errorf("CommonLen() = %d, want 0", got)
			}
			n, m := tab.Dims()
			if n != len(tt.x) || m != len(tt.y) {
				t.Errorf("Dims() = (%d, %d), want (%d, %d)", n, m, len(tt.x), len(tt.y))
			}
		})
	}
}

func TestNewFunc(t *testing.T) {
	x := []string{"Foo", "BAR"}
	y := []string{"foo", "baz"}
	tab := NewFunc(x, y, strings.EqualFold)
	if got := tab.CommonLen(); got != 1 {
		t.Errorf("CommonLen() = %d, want 1", got)
	}
}
