// SPDX-License-Identifier: MIT

package axiom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/axiomic"
)

// Step pairs one path value with its projected entry.
type Step struct {
	Value int64 `json:"value"`
	Entry Entry `json:"axiom"`
}

// Trace is the ordered projection of an idea path.
type Trace []Step

// ComposeTrace projects every element of path, preserving order.
// An empty path yields an empty (non-nil) trace.
//
// Complexity: O(len(path)) time and space.
func ComposeTrace(path []int64) Trace {
	out := make(Trace, 0, len(path))
	for _, v := range path {
		out = append(out, Step{Value: v, Entry: Project(v)})
	}

	return out
}

// Indices returns the axiom index of every step, in order.
func (t Trace) Indices() []int {
	out := make([]int, len(t))
	for i, s := range t {
		out[i] = s.Entry.Index
	}

	return out
}

// ParsePath parses a comma-separated list of integers ("0, 1, -2,3").
// Blank fields are skipped; any other non-integer field is rejected with
// axiomic.ErrInvalidInput rather than silently dropped.
func ParsePath(s string) ([]int64, error) {
	fields := strings.Split(s, ",")
	out := make([]int64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("axiom: ParsePath field %d %q: %w", i, f, axiomic.ErrInvalidInput)
		}
		out = append(out, v)
	}

	return out, nil
}
