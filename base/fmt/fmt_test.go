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

package fmt_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	kfmt "github.com/gx-org/kernelgen/base/fmt"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		txt  string
		want string
	}{
		{
			txt: `
for (int i = 0; i < 4; i++) {
}
`,
			want: `
1 for (int i = 0; i < 4; i++) {
2 }
`,
		},
		{
			txt: `
Line1
Line2
Line3
Line4
Line5
Line6
Line7
Line8
Line9
Line10
`,
			want: `
01 Line1
02 Line2
03 Line3
04 Line4
05 Line5
06 Line6
07 Line7
08 Line8
09 Line9
10 Line10
`,
		},
	}
	for _, test := range tests {
		got := kfmt.Number(strings.TrimSpace(test.txt))
		want := strings.TrimSpace(test.want)
		if got != want {
			t.Errorf("got:\n%s\nbut want:\n%s\ndiff:\n%s", got, want, cmp.Diff(got, want))
		}
	}
	if got := kfmt.Number(""); got != "" {
		t.Errorf("got %q for an empty string", got)
	}
}

func TestIndent(t *testing.T) {
	got := kfmt.IndentSkip(1, "  ", "void f() {\nx = 1;\n\n}\n")
	want := "void f() {\n  x = 1;\n\n  }\n"
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("unexpected indentation (-got +want):\n%s", diff)
	}
	if got, want := kfmt.IndentSkip(0, "\t", "a\nb"), "\ta\n\tb"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}

func TestBytes(t *testing.T) {
	for n, want := range map[int]string{
		0:          "0 B",
		1023:       "1023 B",
		2048:       "2.0 KiB",
		3670016:    "3.5 MiB",
		5368709120: "5.0 GiB",
	} {
		if got := kfmt.Bytes(n); got != want {
			t.Errorf("Bytes(%d) = %q but want %q", n, got, want)
		}
	}
}
