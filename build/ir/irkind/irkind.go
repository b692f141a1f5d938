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

// Package irkind defines the element kinds of the kernel intermediate representation (IR).
package irkind

import "github.com/gx-org/backend/dtype"

// Kind of an element.
type Kind uint

// Kind of elements supported by the IR.
const (
	Invalid Kind = iota

	Int
	UInt
	Float
	Bool
	String
	// Handle is an opaque pointer.
	Handle
	// Void is the kind of statements and kernels.
	Void

	// Max value for a Kind constant.
	Max
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Handle:
		return "handle"
	case Void:
		return "void"
	}
	return "invalid"
}

// ValidBits returns true if an element of the kind can be stored with the given number of bits.
func (k Kind) ValidBits(bits int) bool {
	switch k {
	case Int, UInt:
		return bits == 8 || bits == 16 || bits == 32 || bits == 64
	case Float:
		return bits == 16 || bits == 32 || bits == 64
	case Bool:
		return bits == 1 || bits == 8
	case Handle:
		return bits == 64
	case String, Void:
		return bits == 0
	}
	return false
}

// DType converts an element kind and its width into an array data type.
// Combinations the backend does not support return dtype.Invalid.
func (k Kind) DType(bits int) dtype.DataType {
	switch {
	case k == Int && bits == 32:
		return dtype.Int32
	case k == Int && bits == 64:
		return dtype.Int64
	case k == UInt && bits == 32:
		return dtype.Uint32
	case k == UInt && bits == 64:
		return dtype.Uint64
	case k == Float && bits == 32:
		return dtype.Float32
	case k == Float && bits == 64:
		return dtype.Float64
	case k == Bool:
		return dtype.Bool
	}
	return dtype.Invalid
}

// IsIntegerKind returns true if kind is an integer.
func IsIntegerKind(kind Kind) bool {
	return kind == Int || kind == UInt
}

// IsNumberKind returns true if values of the kind support arithmetic.
func IsNumberKind(kind Kind) bool {
	return IsIntegerKind(kind) || kind == Float
}
