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

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gx-org/kernelgen/base/log"
	"github.com/gx-org/kernelgen/build/ir/irprint"
	"github.com/gx-org/kernelgen/examples/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var out bytes.Buffer
	g := &generator{
		logger:   log.Discard(),
		outDir:   filepath.Join(t.TempDir(), "kernels"),
		validate: true,
		out:      &out,
	}
	paths, err := g.run([]string{"gemm", "demo"})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(g.outDir, "kernel_gemm.cc"), paths[0])

	got, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	want, err := irprint.Kernel(kernels.Gemm())
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
	assert.True(t, strings.Contains(out.String(), `01 #include "../run.h"`), out.String())
}

func TestGenerateAll(t *testing.T) {
	g := &generator{logger: log.Discard(), outDir: t.TempDir()}
	paths, err := g.run(nil)
	require.NoError(t, err)
	var names []string
	for _, path := range paths {
		names = append(names, filepath.Base(path))
	}
	assert.Equal(t, []string{"kernel_demo.cc", "kernel_elu.cc", "kernel_gemm.cc"}, names)
}

func TestUnknownKernel(t *testing.T) {
	g := &generator{logger: log.Discard(), outDir: t.TempDir()}
	paths, err := g.run([]string{"gemm", "conv"})
	assert.Len(t, paths, 1)
	assert.EqualError(t, err, `unknown kernel "conv". Available kernels are [demo elu gemm]`)
}

func TestMessage(t *testing.T) {
	got := message("kernel %s: %s", "gemm", "first\nsecond\nthird")
	assert.Equal(t, "kernel gemm: first\n\tsecond\n\tthird", got)
}

func TestGenerateLogs(t *testing.T) {
	var logs bytes.Buffer
	logger, err := log.New(log.Config{Level: slog.LevelDebug, Format: log.FormatJSON, Output: &logs})
	require.NoError(t, err)
	g := &generator{logger: logger, outDir: t.TempDir()}
	_, err = g.run([]string{"gemm"})
	require.NoError(t, err)
	out := logs.String()
	assert.Contains(t, out, `"indices":["i","k","j"]`)
	assert.Contains(t, out, `"vars":["A","B","C"]`)
	assert.Contains(t, out, `"kind":"Binary","nodes":2`)
}
