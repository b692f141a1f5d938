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

// Package irhelper provides helper functions to build IR programmatically.
//
// The helpers panic when a node cannot be built. They are meant for tests
// and for kernels written in Go; front ends should call the ir.New
// functions and handle errors.
package irhelper

import (
	"github.com/gx-org/kernelgen/build/ir"
	"github.com/gx-org/kernelgen/build/ir/irtype"
)

var (
	// IndexType is the type of loop indices and domain bounds.
	IndexType = irtype.Int(32)
	// DataType is the default type of array elements.
	DataType = irtype.Float(32)
)

// Must returns a node or panics if err is not nil.
func Must[T ir.Node](n T, err error) T {
	if err != nil {
		panic(err)
	}
	return n
}

// Int returns an integer literal of the index type.
func Int(val int64) *ir.IntImm {
	return Must(ir.NewIntImm(IndexType, val))
}

// Float returns a floating point literal of the data type.
func Float(val float64) *ir.FloatImm {
	return Must(ir.NewFloatImm(DataType, val))
}

// Epsilon returns the no-value marker.
func Epsilon() *ir.Epsilon {
	return Must(ir.NewEpsilon(DataType))
}

// Dom returns the domain [begin, begin+extent).
func Dom(begin, extent int64) *ir.Dom {
	return Must(ir.NewDom(IndexType, Int(begin), Int(extent)))
}

// Index returns a loop index iterating over [0, extent).
func Index(name string, extent int64, role ir.IndexType) *ir.Index {
	return Must(ir.NewIndex(IndexType, name, Dom(0, extent), role))
}

// Exprs converts loop indices into expressions, to access variables.
func Exprs(indices ...*ir.Index) []ir.Expr {
	exprs := make([]ir.Expr, len(indices))
	for i, index := range indices {
		exprs[i] = index
	}
	return exprs
}

// Var returns a variable of the data type.
func Var(name string, args []ir.Expr, shape ...int) *ir.Var {
	return Must(ir.NewVar(DataType, name, args, shape))
}

// Dec declares a variable with the type of the variable.
func Dec(v *ir.Var, isRef bool) *ir.Dec {
	return Must(ir.NewDec(v.Type(), v, isRef))
}

// Binary returns a binary expression with the type of its left operand.
func Binary(op ir.BinaryOp, x, y ir.Expr) *ir.Binary {
	return Must(ir.NewBinary(x.Type(), op, x, y))
}

// Compare returns a comparison with a boolean type.
func Compare(op ir.CompareOp, x, y ir.Expr) *ir.Compare {
	return Must(ir.NewCompare(irtype.Bool(), op, x, y))
}

// Move returns an assignment from main memory to main memory.
func Move(dst, src ir.Expr) *ir.Move {
	return Must(ir.NewMove(dst, src, ir.MemToMem))
}

// Declare returns a move declaring dst without initializing it.
func Declare(dst ir.Expr) *ir.Move {
	return Move(dst, Epsilon())
}

// Loop returns a loop nest.
func Loop(indices []*ir.Index, body ...ir.Stmt) *ir.LoopNest {
	return Must(ir.NewLoopNest(indices, body))
}

// If returns a conditional statement.
func If(cond ir.Expr, thenCase, elseCase ir.Stmt) *ir.IfThenElse {
	return Must(ir.NewIfThenElse(cond, thenCase, elseCase))
}

// Kernel returns a CPU kernel.
func Kernel(name string, inputs, outputs []*ir.Dec, body ...ir.Stmt) *ir.Kernel {
	return Must(ir.NewKernel(name, inputs, outputs, body, ir.CPU))
}
