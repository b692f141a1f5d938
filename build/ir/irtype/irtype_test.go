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

package irtype_test

import (
	"testing"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/kernelgen/build/ir/irkind"
	"github.com/gx-org/kernelgen/build/ir/irtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarNames(t *testing.T) {
	tests := []struct {
		tp   irtype.Type
		want string
	}{
		{tp: irtype.Int(32), want: "int"},
		{tp: irtype.Int(64), want: "int64_t"},
		{tp: irtype.UInt(8), want: "uint8_t"},
		{tp: irtype.Float(16), want: "half"},
		{tp: irtype.Float(32), want: "float"},
		{tp: irtype.Float(64), want: "double"},
		{tp: irtype.Bool(), want: "bool"},
		{tp: irtype.String(), want: "std::string"},
		{tp: irtype.Handle(), want: "void*"},
		{tp: irtype.Void(), want: "void"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.tp.String())
		assert.True(t, test.tp.IsScalar(), "%s should be a scalar", test.want)
	}
}

func TestVector(t *testing.T) {
	f4, err := irtype.Vector(irtype.Float(32), 4)
	require.NoError(t, err)
	assert.Equal(t, "float4", f4.String())
	assert.True(t, f4.IsVector())
	assert.Equal(t, 4, f4.Lanes())
	assert.Equal(t, irtype.Float(32), f4.Element())
	assert.Equal(t, dtype.Invalid, f4.DType())

	u16, err := irtype.Vector(irtype.UInt(8), 16)
	require.NoError(t, err)
	assert.Equal(t, "uchar16", u16.String())

	_, err = irtype.Vector(irtype.Bool(), 4)
	assert.Error(t, err)
}

func TestNewErrors(t *testing.T) {
	_, err := irtype.New(irkind.Float, 8, 1)
	assert.Error(t, err)
	_, err = irtype.New(irkind.Int, 32, 0)
	assert.Error(t, err)
	_, err = irtype.New(irkind.Invalid, 32, 1)
	assert.Error(t, err)
	assert.Panics(t, func() { irtype.Int(12) })
}

func TestDType(t *testing.T) {
	assert.Equal(t, dtype.Float32, irtype.Float(32).DType())
	assert.Equal(t, dtype.Int32, irtype.Int(32).DType())
	assert.Equal(t, dtype.Uint64, irtype.UInt(64).DType())
	assert.Equal(t, dtype.Invalid, irtype.String().DType())
}

func TestZeroValue(t *testing.T) {
	var tp irtype.Type
	assert.False(t, tp.IsValid())
	assert.Equal(t, "invalid", tp.String())
}
