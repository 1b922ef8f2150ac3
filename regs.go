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

// Cyclone V HPS FPGA manager and system manager register maps.
package fpgaloader

// FPGA manager register offsets. Offsets 0x830 and up address the
// MON GPIO instance inside the FPGA manager, whose Port A inputs carry
// the fabric status signals.
const (
	RegStat             uint32 = 0x000 // mode and MSEL sample
	RegCtrl             uint32 = 0x004 // configuration control
	RegDclkCnt          uint32 = 0x008 // sends DCLKs to the fabric
	RegDclkStat         uint32 = 0x00c // DCLK counter completion
	RegGpo              uint32 = 0x010 // general purpose outputs to the fabric
	RegGpi              uint32 = 0x014 // general purpose inputs from the fabric
	RegMisci            uint32 = 0x018 // boot handshake inputs
	RegGpioInten        uint32 = 0x830 // Port A interrupt enable
	RegGpioIntmask      uint32 = 0x834 // Port A interrupt mask
	RegGpioInttypeLevel uint32 = 0x838 // Port A interrupt type
	RegGpioIntPolarity  uint32 = 0x83c // Port A interrupt polarity
	RegGpioIntstatus    uint32 = 0x840 // Port A interrupt status
	RegGpioRawIntstatus uint32 = 0x844 // Port A interrupt status before masking
	RegGpioPortaEoi     uint32 = 0x84c // Port A end-of-interrupt, write 1 to clear
	RegGpioExtPorta     uint32 = 0x850 // Port A external port, the status signals
	RegGpioLsSync       uint32 = 0x860 // level-sensitive interrupt synchronization
	RegGpioVerIdCode    uint32 = 0x86c // GPIO component version
	RegGpioConfigReg2   uint32 = 0x870 // Port A width
	RegGpioConfigReg1   uint32 = 0x874 // GPIO configuration snapshot
)

// System manager register offsets, FPGA interface group only.
const (
	RegSiliconID1     uint32 = 0x000 // silicon ID and revision
	RegSiliconID2     uint32 = 0x004 // reserved
	RegWdDbg          uint32 = 0x010 // L4 watchdog debug behavior
	RegBootInfo       uint32 = 0x014 // boot configuration sample
	RegHpsInfo        uint32 = 0x018 // HPS capabilities
	RegParityInj      uint32 = 0x01c // parity failure injection
	RegFpgaIntfGbl    uint32 = 0x020 // all fabric/HPS interfaces on or off
	RegFpgaIntfIndiv  uint32 = 0x024 // per-interface fabric/HPS enables
	RegFpgaIntfModule uint32 = 0x028 // fabric signals to individual HPS modules
)

// Control register fields.
const (
	CtrlEn           uint32 = 0x00000001 // HPS drives the configuration inputs
	CtrlNce          uint32 = 0x00000002 // negates the fabric nCE input
	CtrlNconfigPull  uint32 = 0x00000004 // pulls the nCONFIG input low
	CtrlNstatusPull  uint32 = 0x00000008 // pulls the nSTATUS input low
	CtrlConfDonePull uint32 = 0x00000010 // pulls the CONF_DONE input low
	CtrlPrReq        uint32 = 0x00000020 // partial reconfiguration request
	CtrlCdRatio      uint32 = 0x000000c0 // clock-to-data ratio for the data port
	CtrlAxiCfgEn     uint32 = 0x00000100 // DCLK runs during data port transfers
	CtrlCfgWdth      uint32 = 0x00000200 // passive parallel bus width, 1 is x32
)

// Clock-to-data ratio field values.
const (
	ctrlCdRatioShift        = 6
	CdRatioX1        uint32 = 0x0 << ctrlCdRatioShift
	CdRatioX2        uint32 = 0x1 << ctrlCdRatioShift
	CdRatioX4        uint32 = 0x2 << ctrlCdRatioShift
	CdRatioX8        uint32 = 0x3 << ctrlCdRatioShift
)

// Status register fields.
const (
	StatMode      uint32 = 0x00000007 // configuration phase, decoded by Mode
	StatMsel      uint32 = 0x000000f8 // MSEL[4:0] strap sample
	statMselShift        = 3
)

// MselExpected is the strap setting this package programs the control
// register for: fast passive parallel x32 with a compressed image, the
// DE10-Nano factory default. That setting calls for a x8 clock-to-data
// ratio and the 32-bit bus width.
const (
	MselExpected   uint32 = 0x0a
	ctrlCdRatioSet        = CdRatioX8
	ctrlCfgWdthSet        = CtrlCfgWdth
)

// Port A external port fields. Bits 0 through 11 report the fabric
// status signals the MON GPIO samples.
const (
	PortaNs  uint32 = 0x00000001 // nSTATUS signal
	PortaCd  uint32 = 0x00000002 // CONF_DONE signal
	PortaId  uint32 = 0x00000004 // INIT_DONE signal
	PortaCrc uint32 = 0x00000008 // CRC_ERROR signal
	PortaCcd uint32 = 0x00000010 // CVP_CONF_DONE signal
	PortaPrr uint32 = 0x00000020 // PR_READY signal
	PortaPre uint32 = 0x00000040 // PR_ERROR signal
	PortaPrd uint32 = 0x00000080 // PR_DONE signal
	PortaNcp uint32 = 0x00000100 // nCONFIG pin
	PortaNsp uint32 = 0x00000200 // nSTATUS pin
	PortaCdp uint32 = 0x00000400 // CONF_DONE pin
	PortaFpo uint32 = 0x00000800 // FPGA_POWER_ON signal

	// PortaEoiAll acknowledges every Port A interrupt at once.
	PortaEoiAll uint32 = 0x00000fff
)

// DclkStatDone is set once DCLKCNT has decremented to zero. Write 1 to
// clear.
const DclkStatDone uint32 = 0x00000001

// DCLK counts to send after the fabric accepts the image. The larger
// count applies when the DCLK output clocks external logic during
// initialization.
const (
	DclkCountUnused uint32 = 4
	DclkCountUsed   uint32 = 0x5000
)

// Mode is the configuration phase the fabric reports in the status
// register.
type Mode uint32

const (
	ModeOff    Mode = 0x0 // powered off or not yet out of POR
	ModeReset  Mode = 0x1
	ModeConfig Mode = 0x2
	ModeInit   Mode = 0x3
	ModeUser   Mode = 0x4
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "Off"
	case ModeReset:
		return "Reset"
	case ModeConfig:
		return "Configuration"
	case ModeInit:
		return "Initialization"
	case ModeUser:
		return "User"
	}
	return "Undetermined"
}
