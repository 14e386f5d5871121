// Copyright 2025 go-cpudispatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main provides a diagnostic tool that prints the CPU features
// detected by Go and dispatches the capability level chosen for this host.
//
// Set CPUDISPATCH_LEVEL to a level name (avx, avx2, avx512) to skip
// detection and force that level.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-cpudispatch/dispatch"
)

const levelEnv = "CPUDISPATCH_LEVEL"

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	level, source, err := selectLevel(os.Getenv(levelEnv), hostFeatures())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cpuinfo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Built for: %s\n", displayName(dispatch.Built()))
	fmt.Printf("Selected:  %s (%s)\n", displayName(level), source)
	fmt.Print("Dispatch:  ")
	dispatch.Dispatch(level)
}

// features holds the host capabilities that decide the dispatch level.
type features struct {
	avx2    bool
	avx512f bool
}

// hostFeatures reads x86 capabilities. On other architectures every field
// of cpu.X86 is false, so detection falls through to the baseline.
func hostFeatures() features {
	return features{
		avx2:    cpu.X86.HasAVX2,
		avx512f: cpu.X86.HasAVX512F,
	}
}

// detectLevel picks the highest level the features support.
func detectLevel(f features) dispatch.Level {
	switch {
	case f.avx512f:
		return dispatch.LevelAVX512
	case f.avx2:
		return dispatch.LevelAVX2
	default:
		return dispatch.LevelAVX
	}
}

// selectLevel returns the level to dispatch and where it came from. A
// non-empty override takes precedence over detection.
func selectLevel(override string, f features) (dispatch.Level, string, error) {
	if override == "" {
		return detectLevel(f), "detected", nil
	}
	level, err := dispatch.ParseLevel(override)
	if err != nil {
		return 0, "", fmt.Errorf("%s: %w", levelEnv, err)
	}
	return level, levelEnv, nil
}

// displayName returns the level name as it is usually written, e.g. "AVX512".
func displayName(l dispatch.Level) string {
	return cases.Upper(language.English).String(l.String())
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
	fmt.Println("  (no x86 capability levels; dispatching baseline)")
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}
