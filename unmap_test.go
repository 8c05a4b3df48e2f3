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

var _ = Describe("bit decode table", func() {

	It("decodes all non-zero bytes", func() {
		for v := 1; v <= 0xff; v++ {
			idx := lowestSetBitIndex(uint8(v))
			Expect(idx).To(BeNumerically(">=", 0))
			Expect(idx).To(BeNumerically("<", 8))
			Expect(v&(1<<idx)).NotTo(BeZero(), "%#02x", v)
			Expect(v&(1<<idx-1)).To(BeZero(), "%#02x", v)
		}
	})

	DescribeTable("lowest set bit",
		func(mask uint8, expected int) {
			Expect(lowestSetBitIndex(mask)).To(Equal(expected))
		},
		Entry(nil, uint8(0x01), 0),
		Entry(nil, uint8(0x80), 7),
		Entry(nil, uint8(0xff), 0),
		Entry(nil, uint8(0xf0), 4),
		Entry(nil, uint8(0x0c), 2),
		Entry(nil, uint8(0xa0), 5),
	)

	It("panics on an empty mask", func() {
		Expect(func() {
			_ = lowestSetBitIndex(0)
		}).To(PanicWith(ContainSubstring("ready table corrupted")))
	})

})
