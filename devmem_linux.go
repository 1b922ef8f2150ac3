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

// Register access through /dev/mem.
package fpgaloader

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"
)

// Cyclone V HPS physical addresses. The FPGA manager registers and the
// system manager registers each fit in one page; the configuration
// data port is a single word mapped on a page of its own.
const (
	fpgamgrRegsBase int64 = 0xff706000
	fpgamgrDataBase int64 = 0xffb90000
	sysmgrRegsBase  int64 = 0xffd08000

	regionSpan = 0x1000
)

// DevMem holds the register windows mapped from /dev/mem. It owns the
// mappings and their lifetime; the windows it hands out are plain
// RegisterBlocks with no lifetime of their own.
type DevMem struct {
	f    *os.File
	cfg  mappedRegs
	data mappedRegs
	sys  mappedRegs
}

// OpenDevMem maps the FPGA manager block, the configuration data port
// and the system manager block read-write. It needs the privileges
// /dev/mem demands, root on stock kernels.
func OpenDevMem() (*DevMem, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("Failed to open /dev/mem: %v", err)
	}

	d := &DevMem{f: f}
	for _, w := range []struct {
		base int64
		regs *mappedRegs
	}{
		{fpgamgrRegsBase, &d.cfg},
		{fpgamgrDataBase, &d.data},
		{sysmgrRegsBase, &d.sys},
	} {
		w.regs.mem, err = unix.Mmap(int(f.Fd()), w.base, regionSpan,
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("Failed to mmap registers at %#x: %v", w.base, err)
		}
		glog.V(2).Infof("mapped %#x span %#x", w.base, regionSpan)
	}
	return d, nil
}

// FPGAManagerRegs returns the FPGA manager register window.
func (d *DevMem) FPGAManagerRegs() RegisterBlock { return &d.cfg }

// ConfigData returns the configuration data port window; the port is
// the single word at offset 0.
func (d *DevMem) ConfigData() RegisterBlock { return &d.data }

// SysManagerRegs returns the system manager register window.
func (d *DevMem) SysManagerRegs() RegisterBlock { return &d.sys }

// NewLoader returns a Loader over the three windows.
func (d *DevMem) NewLoader() *Loader {
	return New(d.FPGAManagerRegs(), d.ConfigData(), d.SysManagerRegs())
}

// Close unmaps the windows and closes /dev/mem. The RegisterBlocks
// handed out become invalid.
func (d *DevMem) Close() error {
	for _, m := range []*mappedRegs{&d.cfg, &d.data, &d.sys} {
		if m.mem != nil {
			unix.Munmap(m.mem)
			m.mem = nil
		}
	}
	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}

// mappedRegs implements RegisterBlock over one mapped window. Atomic
// word accesses keep every call a single device access the compiler
// cannot tear, merge or reorder against other calls.
type mappedRegs struct {
	mem []byte
}

func (m *mappedRegs) Read32(off uint32) uint32 {
	return atomic.LoadUint32(m.word(off))
}

func (m *mappedRegs) Write32(off uint32, v uint32) {
	atomic.StoreUint32(m.word(off), v)
}

func (m *mappedRegs) word(off uint32) *uint32 {
	return (*uint32)(unsafe.Pointer(&m.mem[off]))
}
