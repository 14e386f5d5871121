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

package dispatch

import (
	"io"
	"os"
)

type specialization struct {
	name  string
	level Level
	run   func(io.Writer)
}

func specialize[C Tag](name string) specialization {
	var c C
	return specialization{name: name, level: c.Level(), run: Report[C]}
}

var specializations = [...]specialization{
	LevelAVX:    specialize[AVX]("avx"),
	LevelAVX2:   specialize[AVX2]("avx2"),
	LevelAVX512: specialize[AVX512]("avx512"),
}

// Compile-time exhaustiveness check. An "index out of bounds" or "must not be
// negative" error here means the Level constants and the specializations
// table no longer match: give every Level exactly one entry and update the
// ordinals below.
func _() {
	var x [1]struct{}
	_ = x[LevelAVX-0]
	_ = x[LevelAVX2-1]
	_ = x[LevelAVX512-2]
	_ = x[int(numLevels)-len(specializations)]
	_ = x[len(specializations)-int(numLevels)]
}

// Dispatch runs the specialization for l, writing to os.Stdout.
func Dispatch(l Level) {
	DispatchTo(os.Stdout, l)
}

// DispatchTo runs the specialization for l, writing to w.
//
// l must be one of the declared Level constants; any other value panics.
func DispatchTo(w io.Writer, l Level) {
	specializations[l].run(w)
}
