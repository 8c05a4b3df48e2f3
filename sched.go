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

// HighestReady returns the highest ready task priority, that is, the
// numerically lowest enabled priority. It returns [IdlePriority] when no other
// task is ready. HighestReady never modifies the ReadySet.
func (rs *ReadySet) HighestReady() int {
	// The idle task keeps the group mask non-zero, and any set group bit
	// implies a non-zero row mask.
	y := lowestSetBitIndex(rs.group)
	x := lowestSetBitIndex(rs.rows[y])
	return y*rowBits + x
}

// Dispatcher keeps track of the task priority currently selected to run from
// a ReadySet, re-evaluating the selection whenever asked to.
//
// A Dispatcher is not safe for concurrent use; see [Synchronized].
type Dispatcher struct {
	rs       *ReadySet
	current  int
	observer Observer
}

// NewDispatcher returns a new Dispatcher for the specified ReadySet, with the
// currently highest ready priority initially selected.
func NewDispatcher(rs *ReadySet, opts ...Option) *Dispatcher {
	o := newOptions(opts)
	return &Dispatcher{
		rs:       rs,
		current:  rs.HighestReady(),
		observer: o.observer(),
	}
}

// ReadySet returns the ReadySet this Dispatcher selects from.
func (d *Dispatcher) ReadySet() *ReadySet { return d.rs }

// Current returns the currently selected task priority.
func (d *Dispatcher) Current() int { return d.current }

// Schedule re-evaluates the highest ready priority. If it differs from the
// currently selected priority, Schedule selects it, notifies the Observer,
// and returns the Switch together with true. Otherwise, it returns false.
func (d *Dispatcher) Schedule() (Switch, bool) {
	next := d.rs.HighestReady()
	if next == d.current {
		return Switch{}, false
	}
	sw := Switch{Previous: d.current, Next: next}
	d.current = next
	d.observer.Switched(sw)
	return sw, true
}
