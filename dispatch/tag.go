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
	"fmt"
	"io"
	"reflect"
)

// AVX is the baseline capability tag.
type AVX struct{}

// AVX2 is the capability tag for 256-bit integer and FMA support.
type AVX2 struct{}

// AVX512 is the capability tag for AVX-512 Foundation support.
type AVX512 struct{}

// Level returns the Level that selects the tag's specialization.
func (AVX) Level() Level    { return LevelAVX }
func (AVX2) Level() Level   { return LevelAVX2 }
func (AVX512) Level() Level { return LevelAVX512 }

// Tag is satisfied only by the capability tag types. Each tag reports the
// Level that selects it.
type Tag interface {
	AVX | AVX2 | AVX512
	Level() Level
}

// TypeName returns the package-qualified name of T, e.g. "dispatch.AVX2".
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Report writes the identifier of the specialization for C, followed by a
// newline.
func Report[C Tag](w io.Writer) {
	_, _ = fmt.Fprintln(w, TypeName[C]())
}
