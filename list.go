// Copyright 2024 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package rdytbl

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/thediveo/faf"
)

// List is a list of task priority [from...to] ranges.
type List [][2]uint

// String returns the priority list in textual format, with the individual
// ranges “x-y” separated by “,” and single priority ranges collapsed into “x”
// (instead of “x-x”).
func (l List) String() string {
	var b strings.Builder
	for idx, prange := range l {
		if idx > 0 {
			b.WriteString(",")
		}
		if prange[0] == prange[1] {
			b.WriteString(fmt.Sprintf("%d", prange[0]))
			continue
		}
		b.WriteString(fmt.Sprintf("%d-%d", prange[0], prange[1]))
	}
	return b.String()
}

// NewList returns a new priority List for the given textual list format. If
// the text is malformed then an error is returned instead. NewList does not
// check the priorities to be in range, use [List.Validate] for this.
func NewList(b []byte) (List, error) {
	bs := faf.NewBytestring(b)
	l := List{}
	for {
		if bs.EOL() {
			return l, nil
		}
		// a priority is expected, and if nothing follows then this is the
		// final single priority range.
		from, ok := bs.Uint64()
		if !ok {
			return nil, errors.New("expected unsigned integer number")
		}
		if bs.EOL() {
			return append(l, [2]uint{uint(from), uint(from)}), nil
		}
		switch ch, _ := bs.Next(); ch {
		case '-':
			to, ok := bs.Uint64()
			if !ok {
				return nil, errors.New("expected unsigned integer number")
			}
			l = append(l, [2]uint{uint(from), uint(to)})
			if bs.EOL() {
				return l, nil
			}
			// more ranges must be separated by ",".
			ch, _ = bs.Next()
			if ch != ',' {
				return nil, errors.New("expected ','")
			}
		case ',':
			l = append(l, [2]uint{uint(from), uint(from)})
		default:
			return nil, errors.New("expected '-' or ','")
		}
	}
}

// Validate returns nil if all ranges are well-formed and within the valid
// task priority range. Otherwise, it returns a [PriorityError] wrapping
// [ErrInvalidPriority] for the first offending priority.
func (l List) Validate() error {
	for _, prange := range l {
		if prange[0] > prange[1] {
			return &PriorityError{Op: "validate", Priority: listPriority(prange[0]),
				Err: fmt.Errorf("%w: range %d-%d", ErrInvalidPriority, prange[0], prange[1])}
		}
		if prange[1] > IdlePriority {
			return &PriorityError{Op: "validate", Priority: listPriority(prange[1]),
				Err: ErrInvalidPriority}
		}
	}
	return nil
}

// listPriority returns v as an int, saturating at math.MaxInt.
func listPriority(v uint) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// Priorities returns an iterator over all priorities in this List, in list
// order. Ranges with from > to are skipped.
func (l List) Priorities() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, prange := range l {
			if prange[0] > prange[1] {
				continue
			}
			for prio := prange[0]; ; prio++ {
				if !yield(listPriority(prio)) {
					return
				}
				if prio == prange[1] {
					break
				}
			}
		}
	}
}
