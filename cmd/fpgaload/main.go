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

// Loads firmware into the on-board FPGA from the HPS.
// The image must be a compressed Raw Binary File built for the target
// device, and the MSEL switches must select fast passive parallel x32
// with compression. Run with -watch to stay resident and reprogram the
// fabric whenever the image file changes.
package main

import (
	"flag"
	"path"
	"path/filepath"

	fpgaloader "github.com/KS10FPGA/FPGA-Loader"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
)

var (
	rbfFile = flag.String("rbf", "", ".rbf configuration image file name")
	watch   = flag.Bool("watch", false, "Reprogram whenever the image file changes")
)

func init() {
	flag.Parse()
}

func loadImage(dev *fpgaloader.DevMem, filename string) error {
	image, err := fpgaloader.ReadImageFile(filename)
	if err != nil {
		return err
	}
	glog.Infof("Read image %q (%d bytes)", filename, len(image))

	loader := dev.NewLoader()
	if err = loader.Load(image); err != nil {
		if phase, ok := fpgaloader.FailedPhase(err); ok {
			glog.Errorf("Configuration stopped in %v phase", phase)
		}
		return err
	}
	glog.Info("FPGA programmed successfully")
	return nil
}

// watchImage reprograms the fabric on every change to filename. The
// watch is on the directory: build tools replace the file rather than
// rewrite it in place, which would silently drop a file-level watch.
func watchImage(dev *fpgaloader.DevMem, filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	target := filepath.Clean(filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			glog.V(1).Infof("Watcher event: %v", event)
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err = loadImage(dev, filename); err != nil {
				glog.Errorf("Failed programming FPGA: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			glog.Errorf("Watcher error: %v", err)
		}
	}
}

func main() {
	var err error
	defer glog.Flush()

	if len(*rbfFile) == 0 {
		glog.Fatal("Missing --rbf argument")
	}
	if path.Ext(*rbfFile) != ".rbf" {
		glog.Fatal("Expected a Raw Binary File (.rbf) image")
	}

	var dev *fpgaloader.DevMem
	if dev, err = fpgaloader.OpenDevMem(); err != nil {
		glog.Fatalf("Failed to map FPGA interface registers: %v", err)
	}
	defer dev.Close()

	if err = loadImage(dev, *rbfFile); err != nil {
		if !*watch {
			glog.Fatalf("Failed programming FPGA: %v", err)
		}
		glog.Errorf("Failed programming FPGA: %v", err)
	}
	if *watch {
		if err = watchImage(dev, *rbfFile); err != nil {
			glog.Fatalf("Failed watching %s: %v", *rbfFile, err)
		}
	}
}
