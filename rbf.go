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

package fpgaloader

import (
	"fmt"
	"os"
)

// ReadImageFile reads a Raw Binary File configuration image and checks
// the shape Load relies on: a non-empty image that divides evenly into
// 32-bit words. Whether the content is a valid compressed bitstream is
// for the fabric to judge.
func ReadImageFile(filename string) ([]byte, error) {
	image, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("Image file %s is empty", filename)
	}
	if len(image)%4 != 0 {
		return nil, fmt.Errorf("Image size (%v) is not a multiple of 32-bit words", len(image))
	}
	return image, nil
}
