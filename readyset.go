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

const (
	// Levels is the number of task priority levels.
	Levels = rowBits * rowBits
	// IdlePriority is the lowest task priority, reserved for the idle task
	// that is always ready.
	IdlePriority = Levels - 1

	rowBits = 8 // bits per row mask, as well as rows in the group mask
)

// ReadySet is the two-level ready table of task priorities. The zero value is
// not usable; use [New] instead.
//
// A ReadySet is not safe for concurrent use; see [Synchronized].
type ReadySet struct {
	group    uint8          // bit y set iff rows[y] != 0
	rows     [rowBits]uint8 // bit x of rows[y] set iff priority y*8+x is ready
	observer Observer
}

func rowOf(prio int) int { return prio / rowBits }

func bitOf(prio int) uint8 { return uint8(1) << (prio % rowBits) }

// New returns a new ReadySet with only the idle task priority enabled.
func New(opts ...Option) *ReadySet {
	o := newOptions(opts)
	rs := &ReadySet{observer: o.observer()}
	rs.enable(IdlePriority)
	return rs
}

// Enable marks the task with the specified priority as ready. Enabling an
// already ready priority has no effect on the ready table, yet the Observer
// is still notified.
func (rs *ReadySet) Enable(prio int) error {
	if err := checkPriority("enable", prio); err != nil {
		return err
	}
	rs.enable(prio)
	return nil
}

// Disable marks the task with the specified priority as not ready. The idle
// task priority cannot be disabled.
func (rs *ReadySet) Disable(prio int) error {
	if err := checkDisable("disable", prio); err != nil {
		return err
	}
	rs.disable(prio)
	return nil
}

// Toggle disables the ready task with the specified priority, or otherwise
// enables it, returning the new State. As Toggle might disable, it rejects
// the idle task priority.
func (rs *ReadySet) Toggle(prio int) (State, error) {
	if err := checkDisable("toggle", prio); err != nil {
		return Disabled, err
	}
	if rs.isEnabled(prio) {
		rs.disable(prio)
		return Disabled, nil
	}
	rs.enable(prio)
	return Enabled, nil
}

// EnableList enables all priorities in the specified List. Either all
// priorities get enabled or, if the List is invalid, none.
func (rs *ReadySet) EnableList(l List) error {
	if err := l.Validate(); err != nil {
		return err
	}
	for prio := range l.Priorities() {
		rs.enable(prio)
	}
	return nil
}

// DisableList disables all priorities in the specified List. Either all
// priorities get disabled or, if the List is invalid or contains the idle
// task priority, none.
func (rs *ReadySet) DisableList(l List) error {
	if err := l.Validate(); err != nil {
		return err
	}
	for _, prange := range l {
		if prange[1] == IdlePriority {
			return checkDisable("disable", IdlePriority)
		}
	}
	for prio := range l.Priorities() {
		rs.disable(prio)
	}
	return nil
}

// IsEnabled reports whether the task with the specified priority is ready.
// Out-of-range priorities are never ready.
func (rs *ReadySet) IsEnabled(prio int) bool {
	if prio < 0 || prio > IdlePriority {
		return false
	}
	return rs.isEnabled(prio)
}

// Group returns the group mask, where bit y is set if at least one priority
// in row y is ready.
func (rs *ReadySet) Group() uint8 { return rs.group }

// Row returns the mask of row y in [0, 7], where bit x is set if priority
// y*8+x is ready. It panics for rows out of range.
func (rs *ReadySet) Row(y int) uint8 { return rs.rows[y] }

// Enabled returns the List of all ready priorities, in canonical form.
func (rs *ReadySet) Enabled() List {
	l := List{}
	from := -1
	for prio := 0; prio <= Levels; prio++ {
		ready := prio < Levels && rs.isEnabled(prio)
		switch {
		case ready && from < 0:
			from = prio
		case !ready && from >= 0:
			l = append(l, [2]uint{uint(from), uint(prio - 1)})
			from = -1
		}
	}
	return l
}

// String returns the ready priorities in textual list format.
func (rs *ReadySet) String() string {
	return rs.Enabled().String()
}

func (rs *ReadySet) isEnabled(prio int) bool {
	return rs.rows[rowOf(prio)]&bitOf(prio) != 0
}

// enable sets the row bit before the group bit; prio must be valid.
func (rs *ReadySet) enable(prio int) {
	y := rowOf(prio)
	rs.rows[y] |= bitOf(prio)
	rs.group |= uint8(1) << y
	rs.observer.TaskStateChanged(TaskStateChange{Priority: prio, State: Enabled})
}

// disable clears the row bit and then the group bit when the row became
// empty; prio must be valid and not the idle priority.
func (rs *ReadySet) disable(prio int) {
	y := rowOf(prio)
	rs.rows[y] &^= bitOf(prio)
	if rs.rows[y] == 0 {
		rs.group &^= uint8(1) << y
	}
	rs.observer.TaskStateChanged(TaskStateChange{Priority: prio, State: Disabled})
}
