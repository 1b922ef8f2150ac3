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

// Configuration failure taxonomy.
package fpgaloader

import (
	"errors"
	"fmt"
)

// Phase identifies where in the configuration protocol a run stopped.
type Phase int

const (
	PhaseReset Phase = iota
	PhaseConfiguration
	PhaseDataAccept
	PhaseInitialization
	PhaseUser
)

func (p Phase) String() string {
	switch p {
	case PhaseReset:
		return "Reset"
	case PhaseConfiguration:
		return "Configuration"
	case PhaseDataAccept:
		return "Data-accept"
	case PhaseInitialization:
		return "Initialization"
	case PhaseUser:
		return "User"
	}
	return "Unknown"
}

type phaseError interface {
	error
	FailedPhase() Phase
}

func bit(v, mask uint32) uint32 {
	if v&mask != 0 {
		return 1
	}
	return 0
}

// FailedPhase reports the phase a Load failure belongs to. ok is false
// for errors that did not come out of a configuration run.
func FailedPhase(err error) (phase Phase, ok bool) {
	var pe phaseError
	if errors.As(err, &pe) {
		return pe.FailedPhase(), true
	}
	return 0, false
}

// ResetTimeoutError means the fabric never reported the Reset phase
// after nCONFIG was pulled low.
type ResetTimeoutError struct {
	Mode Mode // phase observed when the poll budget ran out
}

func (e *ResetTimeoutError) Error() string {
	return fmt.Sprintf("reset state transition failed (mode %v)", e.Mode)
}

func (e *ResetTimeoutError) FailedPhase() Phase { return PhaseReset }

// ConfigTimeoutError means the fabric never reported the Configuration
// phase after nCONFIG was released.
type ConfigTimeoutError struct {
	Mode Mode // phase observed when the poll budget ran out
}

func (e *ConfigTimeoutError) Error() string {
	return fmt.Sprintf("configuration state transition failed (mode %v)", e.Mode)
}

func (e *ConfigTimeoutError) FailedPhase() Phase { return PhaseConfiguration }

// ConfigRejectedError means the fabric drove nSTATUS low after the
// image was streamed. The hardware reports no reason; a corrupt or
// uncompressed image is the usual cause.
type ConfigRejectedError struct {
	Status uint32 // Port A sample masked to CONF_DONE and nSTATUS
}

func (e *ConfigRejectedError) Error() string {
	return fmt.Sprintf("configuration data rejected (CONF_DONE=%d nSTATUS=%d)",
		bit(e.Status, PortaCd), bit(e.Status, PortaNs))
}

func (e *ConfigRejectedError) FailedPhase() Phase { return PhaseDataAccept }

// InitTimeoutError means CONF_DONE never went high after streaming.
type InitTimeoutError struct {
	Status uint32 // Port A sample masked to CONF_DONE and nSTATUS
}

func (e *InitTimeoutError) Error() string {
	return fmt.Sprintf("initialization state transition failed (CONF_DONE=%d nSTATUS=%d)",
		bit(e.Status, PortaCd), bit(e.Status, PortaNs))
}

func (e *InitTimeoutError) FailedPhase() Phase { return PhaseInitialization }

// DclkTimeoutError means the DCLK counter never reported completion.
type DclkTimeoutError struct{}

func (e *DclkTimeoutError) Error() string {
	return "timed out waiting for DCLKs to be sent"
}

func (e *DclkTimeoutError) FailedPhase() Phase { return PhaseInitialization }

// UserModeTimeoutError means the fabric never reported the User phase
// after initialization.
type UserModeTimeoutError struct {
	Mode Mode // phase observed when the poll budget ran out
}

func (e *UserModeTimeoutError) Error() string {
	return fmt.Sprintf("user mode state transition failed (mode %v)", e.Mode)
}

func (e *UserModeTimeoutError) FailedPhase() Phase { return PhaseUser }

// StrapMismatchError means the sampled MSEL[4:0] switches do not match
// the setting the control register is programmed for.
type StrapMismatchError struct {
	Msel uint32 // sampled strap value
	Want uint32
}

func (e *StrapMismatchError) Error() string {
	return fmt.Sprintf("MSEL[4:0] switches are set to %#04x, want %#04x", e.Msel, e.Want)
}
