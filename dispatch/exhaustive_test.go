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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// loadErrors type-checks this package, optionally with level.go replaced by
// src, and returns every error reported.
func loadErrors(t *testing.T, src []byte) []packages.Error {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping package load in short mode")
	}

	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}
	if src != nil {
		cfg.Overlay = map[string][]byte{filepath.Join(dir, "level.go"): src}
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		t.Fatalf("packages.Load: %v", err)
	}
	var errs []packages.Error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		errs = append(errs, p.Errors...)
	})
	return errs
}

// levelSource returns level.go with extra inserted on a new line after the
// line holding anchor.
func levelSource(t *testing.T, anchor, extra string) []byte {
	t.Helper()
	src, err := os.ReadFile("level.go")
	if err != nil {
		t.Fatal(err)
	}
	line := "\t" + anchor + "\n"
	if n := strings.Count(string(src), line); n != 1 {
		t.Fatalf("level.go has %d lines %q, want 1", n, strings.TrimSpace(line))
	}
	return []byte(strings.Replace(string(src), line, line+"\t"+extra+"\n", 1))
}

func TestExhaustivenessBaseline(t *testing.T) {
	for _, e := range loadErrors(t, nil) {
		t.Errorf("unexpected error: %v", e)
	}
}

func TestExhaustivenessRejectsUnmappedLevel(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
	}{
		{"Appended", "LevelAVX512"},
		{"Inserted", "LevelAVX2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := loadErrors(t, levelSource(t, tt.anchor, "LevelAVX10"))
			if len(errs) == 0 {
				t.Fatal("package with an unmapped level type-checked without errors")
			}
			for _, e := range errs {
				if strings.Contains(e.Error(), "dispatch.go") {
					return
				}
			}
			t.Errorf("no error points at dispatch.go; got %v", errs)
		})
	}
}
