// Copyright 2025 Google LLC
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

// Package fmt provides helpers to present generated source and kernel
// information to users.
package fmt

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Number adds a line number prefix to all lines in a string.
// Numbers are padded with zeros to the width of the largest one.
func Number(x string) string {
	lines := slices.Collect(strings.Lines(x))
	fmtString := fmt.Sprintf("%%0%dd %%s", len(strconv.Itoa(len(lines))))
	var s strings.Builder
	for i, line := range lines {
		s.WriteString(fmt.Sprintf(fmtString, i+1, line))
	}
	return s.String()
}

// IndentSkip skips some lines and indents the rest with a prefix.
// Empty lines are not indented.
func IndentSkip(skip int, prefix, x string) string {
	var y strings.Builder
	n := 0
	for line := range strings.Lines(x) {
		if n >= skip && strings.TrimRight(line, "\n") != "" {
			y.WriteString(prefix)
		}
		y.WriteString(line)
		n++
	}
	return y.String()
}

var units = []string{"KiB", "MiB", "GiB", "TiB"}

// Bytes returns a human-friendly memory size.
func Bytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	size := float64(n) / 1024
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + " " + units[unit]
}
