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

package fpgaloader_test

import (
	"errors"
	"fmt"
	"testing"

	fpgaloader "github.com/KS10FPGA/FPGA-Loader"
)

func TestFailedPhase(t *testing.T) {
	tests := []struct {
		err   error
		phase fpgaloader.Phase
	}{
		{&fpgaloader.ResetTimeoutError{}, fpgaloader.PhaseReset},
		{&fpgaloader.ConfigTimeoutError{}, fpgaloader.PhaseConfiguration},
		{&fpgaloader.ConfigRejectedError{}, fpgaloader.PhaseDataAccept},
		{&fpgaloader.InitTimeoutError{}, fpgaloader.PhaseInitialization},
		{&fpgaloader.DclkTimeoutError{}, fpgaloader.PhaseInitialization},
		{&fpgaloader.UserModeTimeoutError{}, fpgaloader.PhaseUser},
	}
	for _, test := range tests {
		phase, ok := fpgaloader.FailedPhase(test.err)
		if !ok || phase != test.phase {
			t.Errorf("FailedPhase(%T): got (%v, %v), want %v", test.err, phase, ok, test.phase)
		}
	}
}

func TestFailedPhaseWrapped(t *testing.T) {
	err := fmt.Errorf("programming run: %w", &fpgaloader.DclkTimeoutError{})
	phase, ok := fpgaloader.FailedPhase(err)
	if !ok || phase != fpgaloader.PhaseInitialization {
		t.Errorf("FailedPhase: got (%v, %v)", phase, ok)
	}
}

func TestFailedPhaseForeignErrors(t *testing.T) {
	for _, err := range []error{
		errors.New("not from a run"),
		&fpgaloader.StrapMismatchError{Msel: 0, Want: fpgaloader.MselExpected},
	} {
		if _, ok := fpgaloader.FailedPhase(err); ok {
			t.Errorf("FailedPhase(%T) unexpectedly ok", err)
		}
	}
}

func TestRejectedErrorMessage(t *testing.T) {
	err := &fpgaloader.ConfigRejectedError{Status: fpgaloader.PortaCd}
	want := "configuration data rejected (CONF_DONE=1 nSTATUS=0)"
	if err.Error() != want {
		t.Errorf("Unexpected message (%q)", err.Error())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase fpgaloader.Phase
		want  string
	}{
		{fpgaloader.PhaseReset, "Reset"},
		{fpgaloader.PhaseConfiguration, "Configuration"},
		{fpgaloader.PhaseDataAccept, "Data-accept"},
		{fpgaloader.PhaseInitialization, "Initialization"},
		{fpgaloader.PhaseUser, "User"},
	}
	for _, test := range tests {
		if got := test.phase.String(); got != test.want {
			t.Errorf("Phase(%d): got %q, want %q", int(test.phase), got, test.want)
		}
	}
}
