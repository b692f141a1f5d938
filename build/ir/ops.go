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

package ir

import "fmt"

type (
	// UnaryOp is the operator of a unary expression.
	UnaryOp int
	// BinaryOp is the operator of a binary expression.
	BinaryOp int
	// CompareOp is the operator of a comparison.
	CompareOp int
	// CallType tells if a call has side effects.
	CallType int
	// IndexType is the role of a loop index in the access pattern.
	IndexType int
	// MoveType is the memory space transfer modelled by a move.
	MoveType int
	// KernelType is the target on which a kernel runs.
	KernelType int
)

// Unary operators.
const (
	Neg UnaryOp = iota
	Not
	maxUnaryOp
)

// Binary operators.
const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	maxBinaryOp
)

// Comparison operators.
const (
	LT CompareOp = iota
	LE
	EQ
	GE
	GT
	NE
	maxCompareOp
)

// Call types.
const (
	Pure CallType = iota
	SideEffect
	maxCallType
)

// Roles of a loop index.
const (
	Spatial IndexType = iota
	Reduce
	Unrolled
	Vectorized
	Block
	Thread
	maxIndexType
)

// Memory space transfers.
const (
	HostToDevice MoveType = iota
	MemToShared
	SharedToMem
	MemToLocal
	LocalToMem
	SharedToLocal
	LocalToShared
	SharedToShared
	MemToMem
	LocalToLocal
	maxMoveType
)

// Kernel targets.
const (
	CPU KernelType = iota
	GPU
	maxKernelType
)

var (
	unaryOps   = [...]string{Neg: "-", Not: "!"}
	binaryOps  = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", And: "&&", Or: "||"}
	compareOps = [...]string{LT: "<", LE: "<=", EQ: "==", GE: ">=", GT: ">", NE: "!="}
	callTypes  = [...]string{Pure: "pure", SideEffect: "side_effect"}
	indexTypes = [...]string{
		Spatial:    "spatial",
		Reduce:     "reduce",
		Unrolled:   "unrolled",
		Vectorized: "vectorized",
		Block:      "block",
		Thread:     "thread",
	}
	moveTypes = [...]string{
		HostToDevice:   "host_to_device",
		MemToShared:    "mem_to_shared",
		SharedToMem:    "shared_to_mem",
		MemToLocal:     "mem_to_local",
		LocalToMem:     "local_to_mem",
		SharedToLocal:  "shared_to_local",
		LocalToShared:  "local_to_shared",
		SharedToShared: "shared_to_shared",
		MemToMem:       "mem_to_mem",
		LocalToLocal:   "local_to_local",
	}
	kernelTypes = [...]string{CPU: "CPU", GPU: "GPU"}
)

func enumString[T ~int](v T, names []string) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("invalid(%d)", int(v))
	}
	return names[v]
}

// Valid returns true if the operator is defined.
func (op UnaryOp) Valid() bool { return op >= 0 && op < maxUnaryOp }

// String returns the operator as written in the generated source.
func (op UnaryOp) String() string { return enumString(op, unaryOps[:]) }

// Valid returns true if the operator is defined.
func (op BinaryOp) Valid() bool { return op >= 0 && op < maxBinaryOp }

// String returns the operator as written in the generated source.
func (op BinaryOp) String() string { return enumString(op, binaryOps[:]) }

// Valid returns true if the operator is defined.
func (op CompareOp) Valid() bool { return op >= 0 && op < maxCompareOp }

// String returns the operator as written in the generated source.
func (op CompareOp) String() string { return enumString(op, compareOps[:]) }

// Valid returns true if the call type is defined.
func (ct CallType) Valid() bool { return ct >= 0 && ct < maxCallType }

func (ct CallType) String() string { return enumString(ct, callTypes[:]) }

// Valid returns true if the role is defined.
func (it IndexType) Valid() bool { return it >= 0 && it < maxIndexType }

func (it IndexType) String() string { return enumString(it, indexTypes[:]) }

// Valid returns true if the transfer is defined.
func (mt MoveType) Valid() bool { return mt >= 0 && mt < maxMoveType }

// String returns the tag written in the comment following a move.
func (mt MoveType) String() string { return enumString(mt, moveTypes[:]) }

// Valid returns true if the target is defined.
func (kt KernelType) Valid() bool { return kt >= 0 && kt < maxKernelType }

func (kt KernelType) String() string { return enumString(kt, kernelTypes[:]) }
