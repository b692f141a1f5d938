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

package flags_test

import (
	"flag"
	"testing"

	"github.com/gx-org/kernelgen/tools/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	kernels := flags.StringListVar(fs, "kernels", "kernels to generate")
	require.NoError(t, fs.Parse([]string{"-kernels=gemm, demo,", "-kernels", "elu"}))
	assert.Equal(t, []string{"gemm", "demo", "elu"}, *kernels)
	assert.Equal(t, "gemm,demo,elu", fs.Lookup("kernels").Value.String())
}

func TestStringListNotSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	kernels := flags.StringListVar(fs, "kernels", "kernels to generate")
	require.NoError(t, fs.Parse(nil))
	assert.Empty(t, *kernels)
}
