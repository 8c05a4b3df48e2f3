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
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("scheduling", func() {

	DescribeTable("highest ready priority",
		func(ops func(rs *ReadySet), expected int) {
			rs := New()
			ops(rs)
			expectConsistent(rs)
			Expect(rs.HighestReady()).To(Equal(expected))
		},
		Entry("idle only", func(rs *ReadySet) {}, 63),
		Entry("single task", func(rs *ReadySet) {
			Expect(rs.Enable(10)).To(Succeed())
		}, 10),
		Entry("higher priority task stays", func(rs *ReadySet) {
			Expect(rs.Enable(10)).To(Succeed())
			Expect(rs.Enable(5)).To(Succeed())
			Expect(rs.Disable(10)).To(Succeed())
		}, 5),
		Entry("back to idle", func(rs *ReadySet) {
			Expect(rs.Enable(5)).To(Succeed())
			Expect(rs.Disable(5)).To(Succeed())
		}, 63),
		Entry("across row boundary", func(rs *ReadySet) {
			Expect(rs.Enable(7)).To(Succeed())
			Expect(rs.Enable(8)).To(Succeed())
			Expect(rs.Disable(7)).To(Succeed())
			Expect(rs.Group() & (1 << 0)).To(BeZero())
			Expect(rs.Group() & (1 << 1)).NotTo(BeZero())
		}, 8),
		Entry("highest of all", func(rs *ReadySet) {
			Expect(rs.EnableList(List{{0, 62}})).To(Succeed())
		}, 0),
		Entry("lowest in its row", func(rs *ReadySet) {
			Expect(rs.EnableList(List{{45, 47}, {20, 20}, {22, 22}})).To(Succeed())
		}, 20),
	)

	It("finds every single ready priority", func() {
		for prio := range Levels {
			rs := New()
			Expect(rs.Enable(prio)).To(Succeed())
			Expect(rs.HighestReady()).To(Equal(prio))
		}
	})

	It("doesn't change the ready set", func() {
		rs := New()
		Expect(rs.Enable(33)).To(Succeed())
		before := masksOf(rs)
		_ = rs.HighestReady()
		Expect(masksOf(rs)).To(Equal(before))
	})

	It("panics on a corrupted ready set", func() {
		rs := &ReadySet{}
		Expect(func() {
			_ = rs.HighestReady()
		}).To(Panic())
	})

	When("dispatching", func() {

		It("starts with the highest ready priority", func() {
			rs := New()
			Expect(rs.Enable(12)).To(Succeed())
			Expect(NewDispatcher(rs).Current()).To(Equal(12))
		})

		It("switches only on changes", func() {
			events := NewChanObserver(10)
			rs := New()
			d := NewDispatcher(rs, WithObserver(events))
			Expect(d.ReadySet()).To(BeIdenticalTo(rs))
			Expect(d.Current()).To(Equal(IdlePriority))

			_, ok := d.Schedule()
			Expect(ok).To(BeFalse())

			Expect(rs.Enable(20)).To(Succeed())
			sw, ok := d.Schedule()
			Expect(ok).To(BeTrue())
			Expect(sw).To(Equal(Switch{Previous: IdlePriority, Next: 20}))
			Expect(d.Current()).To(Equal(20))

			Expect(rs.Enable(30)).To(Succeed())
			_, ok = d.Schedule()
			Expect(ok).To(BeFalse())

			Expect(rs.Disable(20)).To(Succeed())
			sw, ok = d.Schedule()
			Expect(ok).To(BeTrue())
			Expect(sw).To(Equal(Switch{Previous: 20, Next: 30}))

			Expect(events.C()).To(Receive(Equal(Event{Switch: &Switch{Previous: IdlePriority, Next: 20}})))
			Expect(events.C()).To(Receive(Equal(Event{Switch: &Switch{Previous: 20, Next: 30}})))
			Expect(events.C()).NotTo(Receive())
		})

	})

})
