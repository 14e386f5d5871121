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

// Package dispatch maps a runtime capability level to code specialized at
// compile time for that level.
//
// Capability levels come in pairs: a zero-size tag type used to instantiate
// generic code, and a [Level] value used as the runtime dispatch key.
//
//	Level         Tag
//	LevelAVX      AVX      (baseline)
//	LevelAVX2     AVX2
//	LevelAVX512   AVX512
//
// The [Tag] constraint closes the set of tag types, so generic
// specializations can only be instantiated for members of the set.
//
// # Dispatch
//
// [Dispatch] and [DispatchTo] look the level up in a table with one entry
// per Level and run the specialization instantiated for the matching tag.
// The table is checked at compile time: adding a Level without a table
// entry, or inserting one that shifts existing members, stops the package
// from building.
//
//	lvl, err := dispatch.ParseLevel("avx2")
//	if err != nil {
//	    return err
//	}
//	dispatch.Dispatch(lvl)  // prints "dispatch.AVX2"
//
// # Build Configuration
//
// Each artifact is also specialized for exactly one tag, [Target], chosen by
// build tags:
//
//	go build ./...                  // Target = AVX
//	go build -tags cpu_avx2 ./...   // Target = AVX2
//	go build -tags cpu_avx512 ./... // Target = AVX512
//
// When both tags are given, cpu_avx512 wins. [Built] reports the level and
// [DispatchTarget] runs the build's specialization.
//
// Detecting which level the host supports is left to the caller; see
// internal/cpuinfo for one that uses golang.org/x/sys/cpu.
package dispatch
