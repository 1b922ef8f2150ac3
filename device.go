// Copyright 2022 The FPGA-Loader Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Device register access.
package fpgaloader

//go:generate mockgen -destination=mocks/registers.go -package=mocks github.com/KS10FPGA/FPGA-Loader RegisterBlock

// RegisterBlock is a mapped view of one hardware register window.
// Read32 and Write32 perform exactly one 32-bit device access each, in
// native byte order, never cached or coalesced. off is a byte offset
// into the window and must be word aligned.
type RegisterBlock interface {
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
}

// setBits read-modify-writes the register at off, setting mask bits.
func setBits(r RegisterBlock, off, mask uint32) {
	r.Write32(off, r.Read32(off)|mask)
}

// clearBits read-modify-writes the register at off, clearing mask bits.
func clearBits(r RegisterBlock, off, mask uint32) {
	r.Write32(off, r.Read32(off)&^mask)
}
