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

package irmutate

import (
	"github.com/gx-org/kernelgen/build/fmterr"
	"github.com/gx-org/kernelgen/build/ir"
)

// Default rewrites the children of n and rebuilds n from them.
// It returns nil if a child or n could not be rebuilt.
func (r *Rewriter) Default(n ir.Node) ir.Node {
	switch n := n.(type) {
	// Literals
	case *ir.IntImm:
		return r.check(ir.NewIntImm(n.Type(), n.Value()))
	case *ir.UIntImm:
		return r.check(ir.NewUIntImm(n.Type(), n.Value()))
	case *ir.FloatImm:
		return r.check(ir.NewFloatImm(n.Type(), n.Value()))
	case *ir.StringImm:
		return r.check(ir.NewStringImm(n.Type(), n.Value()))
	case *ir.Epsilon:
		return r.check(ir.NewEpsilon(n.Type()))

	// Expressions
	case *ir.Unary:
		x := r.Expr(n.X())
		if x == nil {
			return nil
		}
		return r.check(ir.NewUnary(n.Type(), n.Op(), x))
	case *ir.Binary:
		x, y := r.Expr(n.X()), r.Expr(n.Y())
		if x == nil || y == nil {
			return nil
		}
		return r.check(ir.NewBinary(n.Type(), n.Op(), x, y))
	case *ir.Compare:
		x, y := r.Expr(n.X()), r.Expr(n.Y())
		if x == nil || y == nil {
			return nil
		}
		return r.check(ir.NewCompare(n.Type(), n.Op(), x, y))
	case *ir.Select:
		cond, trueValue, falseValue := r.Expr(n.Cond()), r.Expr(n.TrueValue()), r.Expr(n.FalseValue())
		if cond == nil || trueValue == nil || falseValue == nil {
			return nil
		}
		return r.check(ir.NewSelect(n.Type(), cond, trueValue, falseValue))
	case *ir.Call:
		args, ok := rewriteAll(r, n.Args())
		if !ok {
			return nil
		}
		return r.check(ir.NewCall(n.Type(), n.CallType(), n.Name(), args))
	case *ir.Cast:
		x := r.Expr(n.X())
		if x == nil {
			return nil
		}
		return r.check(ir.NewCast(n.Type(), x))
	case *ir.Ramp:
		base := r.Expr(n.Base())
		if base == nil {
			return nil
		}
		return r.check(ir.NewRamp(n.Type(), base, n.Stride(), n.Lanes()))
	case *ir.Dec:
		v := as[*ir.Var](r, n.Var(), r.Node(n.Var()))
		if v == nil {
			return nil
		}
		return r.check(ir.NewDec(n.Type(), v, n.IsRef()))
	case *ir.Var:
		args, ok := rewriteAll(r, n.Args())
		if !ok {
			return nil
		}
		return r.check(ir.NewVar(n.Type(), n.Name(), args, n.Shape()))
	case *ir.Dom:
		begin, extent := r.Expr(n.Begin()), r.Expr(n.Extent())
		if begin == nil || extent == nil {
			return nil
		}
		return r.check(ir.NewDom(n.Type(), begin, extent))
	case *ir.Index:
		dom := as[*ir.Dom](r, n.Dom(), r.Node(n.Dom()))
		if dom == nil {
			return nil
		}
		return r.check(ir.NewIndex(n.Type(), n.Name(), dom, n.Role()))

	// Statements
	case *ir.LoopNest:
		indices, indicesOk := rewriteAll(r, n.Indices())
		body, bodyOk := rewriteAll(r, n.Body())
		if !indicesOk || !bodyOk {
			return nil
		}
		return r.check(ir.NewLoopNest(indices, body))
	case *ir.IfThenElse:
		cond, thenCase, elseCase := r.Expr(n.Cond()), r.Stmt(n.Then()), r.Stmt(n.Else())
		if cond == nil || thenCase == nil || elseCase == nil {
			return nil
		}
		return r.check(ir.NewIfThenElse(cond, thenCase, elseCase))
	case *ir.Move:
		dst, src := r.Expr(n.Dst()), r.Expr(n.Src())
		if dst == nil || src == nil {
			return nil
		}
		return r.check(ir.NewMove(dst, src, n.MoveType()))

	// Groups
	case *ir.Kernel:
		inputs, inputsOk := rewriteAll(r, n.Inputs())
		outputs, outputsOk := rewriteAll(r, n.Outputs())
		body, bodyOk := rewriteAll(r, n.Body())
		if !inputsOk || !outputsOk || !bodyOk {
			return nil
		}
		return r.check(ir.NewKernel(n.Name(), inputs, outputs, body, n.KernelType()))
	}
	r.errs.Append(fmterr.Internalf(ir.Describe(n), "cannot rewrite node of type %T", n))
	return nil
}
