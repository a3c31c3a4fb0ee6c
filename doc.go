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

// Package lcsdiff computes minimal edit scripts between two slices using the classic longest
// common subsequence algorithm.
//
// The main functions are [Diff], which returns the shortest sequence of insertions and deletions
// transforming one slice into the other as an [EditScript], and [LCS], which returns the longest
// common subsequence itself. Scripts can be applied, inverted, and filtered into insertion-only
// and deletion-only views.
//
// Unlike heuristic diff implementations, the edit scripts produced here are guaranteed to be
// mathematically minimal: len(x) + len(y) - 2·len(LCS(x, y)) operations, no more. The price is
// exact O(n·m) dynamic programming in both time and space, which makes the package a good fit for
// the short, UI-sized sequences it was written for and a poor fit for diffing large files.
//
// All functions are pure: they allocate only call-local state and are safe to call concurrently
// on any inputs.
//
// Note: For diffing a sequence of sections each holding rows, as in grouped list data, see
// [znkr.io/lcsdiff/sectiondiff].
//
// [znkr.io/lcsdiff/sectiondiff]: https://pkg.go.dev/znkr.io/lcsdiff/sectiondiff
package lcsdiff
