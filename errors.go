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
)

var (
	// ErrInvalidPriority signals a priority outside [0, 63].
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrIdleTaskProtected signals an attempt to disable the idle task.
	ErrIdleTaskProtected = errors.New("cannot disable the idle task")
)

// PriorityError describes a rejected ReadySet operation. The ReadySet is left
// untouched whenever a PriorityError is returned.
type PriorityError struct {
	Op       string // "enable", "disable", ...
	Priority int    // list priorities beyond math.MaxInt saturate
	Err      error  // either ErrInvalidPriority or ErrIdleTaskProtected
}

// Error returns the operation, priority and cause.
func (e *PriorityError) Error() string {
	return fmt.Sprintf("%s priority %d: %s", e.Op, e.Priority, e.Err)
}

// Unwrap returns the cause, such as ErrInvalidPriority.
func (e *PriorityError) Unwrap() error { return e.Err }

// checkPriority returns a PriorityError if prio is out of range.
func checkPriority(op string, prio int) error {
	if prio < 0 || prio > IdlePriority {
		return &PriorityError{Op: op, Priority: prio, Err: ErrInvalidPriority}
	}
	return nil
}

// checkDisable additionally rejects disabling the idle priority.
func checkDisable(op string, prio int) error {
	if err := checkPriority(op, prio); err != nil {
		return err
	}
	if prio == IdlePriority {
		return &PriorityError{Op: op, Priority: prio, Err: ErrIdleTaskProtected}
	}
	return nil
}
