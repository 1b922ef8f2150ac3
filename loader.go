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

// Package fpgaloader programs the FPGA fabric of a Cyclone V SoC from
// the HPS. It drives the FPGA manager through the full configuration
// sequence of the Cyclone V Hard Processor System TRM: reset the
// fabric, stream a compressed Raw Binary File image through the
// configuration data port, clock the fabric through initialization and
// hand the configuration pins back once the fabric reaches user mode.
//
// The fabric validates the image on its own and only signals
// acceptance or rejection; a rejected image (corrupt, or built without
// compression) fails the run with no further diagnostics.
package fpgaloader

import (
	"encoding/binary"
	"time"

	"github.com/golang/glog"
)

// Poll tuning. Budgets are iteration counts rather than wall-clock
// deadlines; a poll gives up after budget samples taken pollInterval
// apart.
const (
	pollInterval   = 10 * time.Microsecond
	modePollBudget = 1000 // phase and Port A status polls
	dclkPollBudget = 100  // DCLK completion poll
)

type pollStatus int

const (
	pollAgain pollStatus = iota
	pollDone
	pollFailed
)

// waitFor samples cond up to budget times, sleeping pollInterval
// between samples. It returns cond's first conclusive answer, or
// pollAgain once the budget is spent.
func waitFor(budget int, cond func() pollStatus) pollStatus {
	for i := 0; i < budget; i++ {
		if st := cond(); st != pollAgain {
			return st
		}
		time.Sleep(pollInterval)
	}
	return pollAgain
}

// Loader drives configuration runs over already-mapped register
// windows. Runs are synchronous and must not overlap: a run resets the
// whole fabric, so the caller serializes access to the hardware.
type Loader struct {
	cfg  RegisterBlock // FPGA manager registers
	data RegisterBlock // configuration data port, the word at offset 0
	sys  RegisterBlock // system manager registers
}

// New returns a Loader over the FPGA manager register block, the
// configuration data port and the system manager register block.
func New(cfg, data, sys RegisterBlock) *Loader {
	return &Loader{cfg: cfg, data: data, sys: sys}
}

// Mode reads back the configuration phase the fabric currently
// reports. It is a pure query and is valid at any time.
func (l *Loader) Mode() Mode {
	return Mode(l.cfg.Read32(RegStat) & StatMode)
}

// Msel reads back the sampled MSEL[4:0] strap switches.
func (l *Loader) Msel() uint32 {
	return (l.cfg.Read32(RegStat) & StatMsel) >> statMselShift
}

// VerifyStraps checks the sampled straps against the setting this
// package programs the control register for. Load treats a mismatch as
// a warning only; the fabric rejects an incompatible image by itself.
func (l *Loader) VerifyStraps() error {
	if msel := l.Msel(); msel != MselExpected {
		return &StrapMismatchError{Msel: msel, Want: MselExpected}
	}
	return nil
}

// Load streams image into the fabric and carries it through to user
// mode. image holds a compressed .rbf bitstream and is consumed in
// 32-bit words; a trailing fragment shorter than a word is ignored.
//
// On success the fabric is in user mode and the configuration inputs
// are back under pin control. On failure the returned error identifies
// the phase (see FailedPhase) and the hardware is left where the run
// stopped, still under HPS control; a new run starts over from reset.
func (l *Loader) Load(image []byte) error {
	if err := l.VerifyStraps(); err != nil {
		glog.Warning(err)
	}

	// Quiet fabric-to-HPS module signals while the fabric goes down.
	l.sys.Write32(RegFpgaIntfModule, 0)

	// Program the clock-to-data ratio and bus width for the expected
	// strap setting.
	ctrl := l.cfg.Read32(RegCtrl)
	ctrl &^= CtrlCdRatio | CtrlCfgWdth
	ctrl |= ctrlCdRatioSet | ctrlCfgWdthSet
	l.cfg.Write32(RegCtrl, ctrl)

	// Chip enable on, then move the configuration inputs from the pins
	// to the HPS.
	clearBits(l.cfg, RegCtrl, CtrlNce)
	setBits(l.cfg, RegCtrl, CtrlEn)

	// Pull nCONFIG low to drop the fabric into reset.
	setBits(l.cfg, RegCtrl, CtrlNconfigPull)
	if waitFor(modePollBudget, l.modeIs(ModeReset)) != pollDone {
		return &ResetTimeoutError{Mode: l.Mode()}
	}
	l.logPhase()

	// Release nCONFIG; the fabric starts accepting configuration.
	clearBits(l.cfg, RegCtrl, CtrlNconfigPull)
	if waitFor(modePollBudget, l.modeIs(ModeConfig)) != pollDone {
		return &ConfigTimeoutError{Mode: l.Mode()}
	}
	l.logPhase()

	// Stale Port A interrupt state would alias the CONF_DONE and
	// nSTATUS samples below.
	l.cfg.Write32(RegGpioPortaEoi, PortaEoiAll)

	// Open the data path and stream the image one word per write.
	setBits(l.cfg, RegCtrl, CtrlAxiCfgEn)
	for i := 0; i+4 <= len(image); i += 4 {
		l.data.Write32(0, binary.NativeEndian.Uint32(image[i:]))
	}
	glog.V(1).Infof("streamed %d configuration words", len(image)/4)

	// CONF_DONE and nSTATUS both high mean the fabric accepted the
	// image. nSTATUS low is a rejection and ends the run right away;
	// CONF_DONE alone still low means the fabric is busy checking.
	var status uint32
	st := waitFor(modePollBudget, func() pollStatus {
		status = l.cfg.Read32(RegGpioExtPorta) & (PortaCd | PortaNs)
		switch {
		case status == PortaCd|PortaNs:
			return pollDone
		case status&PortaNs == 0:
			return pollFailed
		}
		return pollAgain
	})
	if st == pollFailed {
		return &ConfigRejectedError{Status: status}
	}
	if st != pollDone {
		return &InitTimeoutError{Status: status}
	}
	l.logPhase()

	// Close the data path.
	clearBits(l.cfg, RegCtrl, CtrlAxiCfgEn)

	// A completion flag left over from an earlier run would satisfy
	// the poll below before any DCLKs went out.
	if l.cfg.Read32(RegDclkStat) != 0 {
		l.cfg.Write32(RegDclkStat, DclkStatDone)
	}

	// Send the DCLKs that move the fabric into initialization. DCLK is
	// not wired to external logic on this board.
	l.cfg.Write32(RegDclkCnt, DclkCountUnused)
	if waitFor(dclkPollBudget, func() pollStatus {
		if l.cfg.Read32(RegDclkStat)&DclkStatDone != 0 {
			return pollDone
		}
		return pollAgain
	}) != pollDone {
		return &DclkTimeoutError{}
	}
	l.cfg.Write32(RegDclkStat, DclkStatDone)

	if waitFor(modePollBudget, l.modeIs(ModeUser)) != pollDone {
		return &UserModeTimeoutError{Mode: l.Mode()}
	}
	l.logPhase()

	// Hand the configuration inputs back to the pins.
	clearBits(l.cfg, RegCtrl, CtrlEn)
	return nil
}

func (l *Loader) modeIs(want Mode) func() pollStatus {
	return func() pollStatus {
		if l.Mode() == want {
			return pollDone
		}
		return pollAgain
	}
}

func (l *Loader) logPhase() {
	if glog.V(1) {
		glog.Infof("fpga: %v state", l.Mode())
	}
}
