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

import "sync"

// Synchronized is a ReadySet together with its Dispatcher, safe for
// concurrent use. A single lock covers each complete operation, so no caller
// ever sees the group and row masks in an intermediate state.
//
// Observers are notified while the lock is held.
type Synchronized struct {
	mu sync.Mutex
	rs *ReadySet
	d  *Dispatcher
}

// NewSynchronized returns a new Synchronized with only the idle task priority
// ready and selected. The options apply to both the ReadySet and the
// Dispatcher.
func NewSynchronized(opts ...Option) *Synchronized {
	rs := New(opts...)
	return &Synchronized{
		rs: rs,
		d:  NewDispatcher(rs, opts...),
	}
}

// Enable marks the task with the specified priority as ready.
func (s *Synchronized) Enable(prio int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rs.Enable(prio)
}

// Disable marks the task with the specified priority as not ready.
func (s *Synchronized) Disable(prio int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rs.Disable(prio)
}

// Toggle flips the ready state of the task with the specified priority.
func (s *Synchronized) Toggle(prio int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rs.Toggle(prio)
}

// IsEnabled reports whether the task with the specified priority is ready.
func (s *Synchronized) IsEnabled(prio int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rs.IsEnabled(prio)
}

// HighestReady returns the highest ready task priority.
func (s *Synchronized) HighestReady() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rs.HighestReady()
}

// Schedule re-evaluates the selected task priority; see [Dispatcher.Schedule].
func (s *Synchronized) Schedule() (Switch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Schedule()
}

// Current returns the currently selected task priority.
func (s *Synchronized) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Current()
}

// Snapshot returns a consistent copy of the group and row masks.
func (s *Synchronized) Snapshot() (group uint8, rows [rowBits]uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rs.group, s.rs.rows
}
