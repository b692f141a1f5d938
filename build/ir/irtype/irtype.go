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

// Package irtype describes the type of values in the kernel IR:
// an element kind, a width in bits and a number of lanes.
package irtype

import (
	"fmt"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/kernelgen/build/ir/irkind"
	"github.com/pkg/errors"
)

// Type of a scalar or vector value.
// The zero value is an invalid type.
type Type struct {
	kind  irkind.Kind
	bits  int
	lanes int
}

// New returns a type given an element kind, a width and a number of lanes.
func New(kind irkind.Kind, bits, lanes int) (Type, error) {
	if !kind.ValidBits(bits) {
		return Type{}, errors.Errorf("invalid width %d for %s elements", bits, kind)
	}
	if lanes < 1 {
		return Type{}, errors.Errorf("invalid number of lanes %d: must be at least 1", lanes)
	}
	if lanes > 1 && !irkind.IsNumberKind(kind) {
		return Type{}, errors.Errorf("%s elements cannot be vectorized", kind)
	}
	return Type{kind: kind, bits: bits, lanes: lanes}, nil
}

func mustScalar(kind irkind.Kind, bits int) Type {
	tp, err := New(kind, bits, 1)
	if err != nil {
		panic(err)
	}
	return tp
}

// Int returns a signed integer scalar type.
// It panics if bits is not 8, 16, 32, or 64.
func Int(bits int) Type { return mustScalar(irkind.Int, bits) }

// UInt returns an unsigned integer scalar type.
// It panics if bits is not 8, 16, 32, or 64.
func UInt(bits int) Type { return mustScalar(irkind.UInt, bits) }

// Float returns a floating point scalar type.
// It panics if bits is not 16, 32, or 64.
func Float(bits int) Type { return mustScalar(irkind.Float, bits) }

// Bool returns the boolean type.
func Bool() Type { return mustScalar(irkind.Bool, 1) }

// String returns the string type.
func String() Type { return mustScalar(irkind.String, 0) }

// Handle returns the type of an opaque pointer.
func Handle() Type { return mustScalar(irkind.Handle, 64) }

// Void returns the type of statements.
func Void() Type { return mustScalar(irkind.Void, 0) }

// Vector returns a vector type with the same element as t.
func Vector(t Type, lanes int) (Type, error) {
	return New(t.kind, t.bits, lanes)
}

// Kind returns the kind of the elements.
func (t Type) Kind() irkind.Kind { return t.kind }

// Bits returns the width of an element in bits.
func (t Type) Bits() int { return t.bits }

// Lanes returns the number of lanes. Scalars have one lane.
func (t Type) Lanes() int { return t.lanes }

// IsValid returns true if the type has been built by a constructor.
func (t Type) IsValid() bool { return t.kind != irkind.Invalid && t.lanes > 0 }

// IsScalar returns true if the type has a single lane.
func (t Type) IsScalar() bool { return t.lanes == 1 }

// IsVector returns true if the type has more than one lane.
func (t Type) IsVector() bool { return t.lanes > 1 }

// Element returns the scalar type of a single lane.
func (t Type) Element() Type {
	return Type{kind: t.kind, bits: t.bits, lanes: 1}
}

// DType returns the backend data type of a scalar type.
// Vectors and types unknown to the backend return dtype.Invalid.
func (t Type) DType() dtype.DataType {
	if !t.IsScalar() {
		return dtype.Invalid
	}
	return t.kind.DType(t.bits)
}

var (
	scalarNames = map[irkind.Kind]map[int]string{
		irkind.Int:    {8: "int8_t", 16: "int16_t", 32: "int", 64: "int64_t"},
		irkind.UInt:   {8: "uint8_t", 16: "uint16_t", 32: "uint32_t", 64: "uint64_t"},
		irkind.Float:  {16: "half", 32: "float", 64: "double"},
		irkind.Bool:   {1: "bool", 8: "bool"},
		irkind.String: {0: "std::string"},
		irkind.Handle: {64: "void*"},
		irkind.Void:   {0: "void"},
	}
	vectorNames = map[irkind.Kind]map[int]string{
		irkind.Int:   {8: "char", 16: "short", 32: "int", 64: "longlong"},
		irkind.UInt:  {8: "uchar", 16: "ushort", 32: "uint", 64: "ulonglong"},
		irkind.Float: {16: "half", 32: "float", 64: "double"},
	}
)

// String returns the name of the type in the generated source.
func (t Type) String() string {
	if !t.IsValid() {
		return "invalid"
	}
	if t.IsScalar() {
		return scalarNames[t.kind][t.bits]
	}
	return fmt.Sprintf("%s%d", vectorNames[t.kind][t.bits], t.lanes)
}
