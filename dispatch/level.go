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
	"strconv"
	"strings"
)

// Level is a capability level used as the runtime dispatch key.
// The zero value is the baseline level.
type Level uint8

const (
	LevelAVX Level = iota
	LevelAVX2
	LevelAVX512

	// numLevels must stay last.
	numLevels
)

// String returns the lowercase level name, e.g. "avx2".
func (l Level) String() string {
	if !l.Valid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return specializations[l].name
}

// Valid reports whether l is a member of the capability set.
func (l Level) Valid() bool {
	return l < numLevels
}

// Levels returns every capability level in ascending order.
func Levels() []Level {
	levels := make([]Level, numLevels)
	for i := range levels {
		levels[i] = Level(i)
	}
	return levels
}

// ParseLevel returns the Level with the given name. Matching ignores case
// and surrounding whitespace.
func ParseLevel(name string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, l := range Levels() {
		if l.String() == want {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level: %s (valid: %s)", name, validNames())
}

func validNames() string {
	names := make([]string, 0, numLevels)
	for _, l := range Levels() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}
