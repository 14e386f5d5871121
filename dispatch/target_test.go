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
	"bytes"
	"testing"
)

func TestDispatchTargetMatchesBuilt(t *testing.T) {
	if !Built().Valid() {
		t.Fatalf("Built() = %v, not a declared level", Built())
	}

	var got, want bytes.Buffer
	DispatchTarget(&got)
	DispatchTo(&want, Built())
	if got.String() != want.String() {
		t.Errorf("DispatchTarget wrote %q, DispatchTo(Built()) wrote %q", got.String(), want.String())
	}
}
