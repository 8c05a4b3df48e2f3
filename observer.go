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
	"sync/atomic"

	"github.com/go-logr/logr"
)

// State of a task priority in a ReadySet.
type State int

const (
	Disabled State = iota // not ready
	Enabled               // ready to run
)

// String returns "enabled" or "disabled".
func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// TaskStateChange reports a priority that has been enabled or disabled.
type TaskStateChange struct {
	Priority int
	State    State
}

// Switch reports that the selected priority changed from Previous to Next.
type Switch struct {
	Previous int
	Next     int
}

// Observer gets told about task state changes and priority switches, in order
// to mirror them, for example, on a display. Observers are called
// synchronously and must not call back into the ReadySet or Dispatcher that
// notifies them.
type Observer interface {
	TaskStateChanged(TaskStateChange)
	Switched(Switch)
}

// Observers fans out notifications to all its Observer elements, in order.
type Observers []Observer

// TaskStateChanged notifies all observers of a task state change.
func (o Observers) TaskStateChanged(c TaskStateChange) {
	for _, obs := range o {
		obs.TaskStateChanged(c)
	}
}

// Switched notifies all observers of a priority switch.
func (o Observers) Switched(s Switch) {
	for _, obs := range o {
		obs.Switched(s)
	}
}

// NopObserver ignores all notifications.
type NopObserver struct{}

// TaskStateChanged does nothing.
func (NopObserver) TaskStateChanged(TaskStateChange) {}

// Switched does nothing.
func (NopObserver) Switched(Switch) {}

// Option configures a ReadySet, Dispatcher, or Synchronized.
type Option func(*options)

type options struct {
	observers Observers
}

// WithObserver adds an Observer to be notified. Multiple observers are
// notified in the order they were added.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observers = append(opts.observers, o)
		}
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) observer() Observer {
	switch len(o.observers) {
	case 0:
		return NopObserver{}
	case 1:
		return o.observers[0]
	}
	return o.observers
}

// Event is either a TaskStateChange or a Switch, as delivered by a
// ChanObserver. Exactly one of both fields is non-nil.
type Event struct {
	TaskStateChange *TaskStateChange
	Switch          *Switch
}

// ChanObserver forwards notifications as Event values into a buffered
// channel. It never blocks: when the channel is full, events get dropped and
// counted instead.
type ChanObserver struct {
	ch      chan Event
	dropped atomic.Uint64
}

var _ Observer = (*ChanObserver)(nil)

// NewChanObserver returns a new ChanObserver with a channel buffer of the
// specified size.
func NewChanObserver(size int) *ChanObserver {
	return &ChanObserver{ch: make(chan Event, size)}
}

// C returns the channel to receive events from.
func (c *ChanObserver) C() <-chan Event { return c.ch }

// Dropped returns the number of events dropped so far.
func (c *ChanObserver) Dropped() uint64 { return c.dropped.Load() }

// TaskStateChanged sends the task state change as an Event.
func (c *ChanObserver) TaskStateChanged(tsc TaskStateChange) {
	c.send(Event{TaskStateChange: &tsc})
}

// Switched sends the switch as an Event.
func (c *ChanObserver) Switched(s Switch) {
	c.send(Event{Switch: &s})
}

func (c *ChanObserver) send(ev Event) {
	select {
	case c.ch <- ev:
	default:
		c.dropped.Add(1)
	}
}

// LogObserver returns an Observer logging switches at info level and task
// state changes at verbosity level 1.
func LogObserver(logger logr.Logger) Observer {
	return &logObserver{log: logger}
}

type logObserver struct {
	log logr.Logger
}

func (l *logObserver) TaskStateChanged(c TaskStateChange) {
	l.log.V(1).Info("task state changed", "priority", c.Priority, "state", c.State.String())
}

func (l *logObserver) Switched(s Switch) {
	l.log.Info("switching task", "from", s.Previous, "to", s.Next)
}
