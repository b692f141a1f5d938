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

package ir_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/kernelgen/build/ir"
	"github.com/gx-org/kernelgen/build/ir/irhelper"
	"github.com/gx-org/kernelgen/build/ir/irtype"
)

var (
	f32 = irtype.Float(32)
	i32 = irtype.Int(32)
)

func TestFactoryErrors(t *testing.T) {
	x := irhelper.Var("x", nil)
	dom := irhelper.Dom(0, 4)
	var nilExpr ir.Expr
	var nilVar *ir.Var
	var nilIndex *ir.Index
	tests := []struct {
		name  string
		build func() (ir.Node, error)
		want  string
	}{
		{
			name:  "invalid type",
			build: func() (ir.Node, error) { return ir.NewIntImm(irtype.Type{}, 1) },
			want:  "IntImm 1: invalid type",
		},
		{
			name:  "nil unary operand",
			build: func() (ir.Node, error) { return ir.NewUnary(f32, ir.Neg, nilExpr) },
			want:  "Unary -: operand is nil",
		},
		{
			name:  "undefined binary operator",
			build: func() (ir.Node, error) { return ir.NewBinary(f32, ir.BinaryOp(42), x, x) },
			want:  "Binary invalid(42): undefined binary operator",
		},
		{
			name:  "nil right operand",
			build: func() (ir.Node, error) { return ir.NewCompare(irtype.Bool(), ir.LT, x, nilVar) },
			want:  "Compare <: operand 1 is nil",
		},
		{
			name:  "invalid function name",
			build: func() (ir.Node, error) { return ir.NewCall(f32, ir.Pure, "1f", nil) },
			want:  `Call 1f: invalid function name "1f"`,
		},
		{
			name:  "zero stride",
			build: func() (ir.Node, error) { return ir.NewRamp(f32, x, 0, 4) },
			want:  "Ramp: stride cannot be 0",
		},
		{
			name:  "nil declared variable",
			build: func() (ir.Node, error) { return ir.NewDec(f32, nil, true) },
			want:  "Dec: declared variable is nil",
		},
		{
			name:  "invalid dimension",
			build: func() (ir.Node, error) { return ir.NewVar(f32, "a", nil, []int{4, 0}) },
			want:  "Var a: invalid dimension 0 at axis 1",
		},
		{
			name:  "invalid variable name",
			build: func() (ir.Node, error) { return ir.NewVar(f32, "a-b", nil, nil) },
			want:  `Var a-b: invalid variable name "a-b"`,
		},
		{
			name:  "nil domain",
			build: func() (ir.Node, error) { return ir.NewIndex(i32, "i", nil, ir.Spatial) },
			want:  "Index i: domain is nil",
		},
		{
			name:  "undefined role",
			build: func() (ir.Node, error) { return ir.NewIndex(i32, "i", dom, ir.IndexType(-1)) },
			want:  "Index i: undefined index role",
		},
		{
			name:  "float index",
			build: func() (ir.Node, error) { return ir.NewIndex(f32, "i", dom, ir.Spatial) },
			want:  "Index i: index type float is not an integer",
		},
		{
			name: "vector index",
			build: func() (ir.Node, error) {
				int4, err := irtype.Vector(i32, 4)
				if err != nil {
					return nil, err
				}
				return ir.NewIndex(int4, "i", dom, ir.Spatial)
			},
			want: "Index i: index type int4 is not an integer",
		},
		{
			name:  "nil loop index",
			build: func() (ir.Node, error) { return ir.NewLoopNest([]*ir.Index{nilIndex}, nil) },
			want:  "LoopNest: index is nil",
		},
		{
			name: "missing else branch",
			build: func() (ir.Node, error) {
				return ir.NewIfThenElse(x, irhelper.Declare(x), nil)
			},
			want: "IfThenElse: branch 1 is nil",
		},
		{
			name:  "epsilon destination",
			build: func() (ir.Node, error) { return ir.NewMove(irhelper.Epsilon(), x, ir.MemToMem) },
			want:  "Move mem_to_mem: destination cannot be epsilon",
		},
		{
			name:  "undefined move type",
			build: func() (ir.Node, error) { return ir.NewMove(x, x, ir.MoveType(10)) },
			want:  "Move invalid(10): undefined move type",
		},
		{
			name: "value parameter",
			build: func() (ir.Node, error) {
				return ir.NewKernel("k", []*ir.Dec{irhelper.Dec(x, false)}, nil, nil, ir.CPU)
			},
			want: "Kernel k: parameter x is not declared as a reference",
		},
		{
			name:  "undefined kernel type",
			build: func() (ir.Node, error) { return ir.NewKernel("k", nil, nil, nil, ir.KernelType(2)) },
			want:  "Kernel k: undefined kernel type",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node, err := test.build()
			if err == nil {
				t.Fatalf("expected an error but got node %s", ir.Describe(node))
			}
			if !ir.IsNil(node) {
				t.Errorf("got node %s with error %v", ir.Describe(node), err)
			}
			if got := err.Error(); got != test.want {
				t.Errorf("got error %q but want %q", got, test.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	var got []string
	for op := ir.Add; op.Valid(); op++ {
		got = append(got, op.String())
	}
	for op := ir.LT; op.Valid(); op++ {
		got = append(got, op.String())
	}
	for op := ir.Neg; op.Valid(); op++ {
		got = append(got, op.String())
	}
	want := []string{
		"+", "-", "*", "/", "%", "&&", "||",
		"<", "<=", "==", ">=", ">", "!=",
		"-", "!",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("unexpected operator spellings (-got +want):\n%s", diff)
	}
	if got := ir.SharedToLocal.String(); got != "shared_to_local" {
		t.Errorf("got %q but want shared_to_local", got)
	}
	if got := ir.GPU.String(); got != "GPU" {
		t.Errorf("got %q but want GPU", got)
	}
	if got := ir.SideEffect.String(); got != "side_effect" {
		t.Errorf("got %q but want side_effect", got)
	}
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"i", "_tmp", "A1", "simple_gemm"} {
		if !ir.ValidName(name) {
			t.Errorf("%q should be a valid name", name)
		}
	}
	for _, name := range []string{"", "1a", "a b", "a.b", "é"} {
		if ir.ValidName(name) {
			t.Errorf("%q should not be a valid name", name)
		}
	}
}

func TestKernelAccessors(t *testing.T) {
	a := irhelper.Var("A", nil, 4)
	b := irhelper.Var("B", nil, 4)
	decA, decB := irhelper.Dec(a, true), irhelper.Dec(b, true)
	move := irhelper.Declare(irhelper.Dec(irhelper.Var("t", nil), false))
	inputs := []*ir.Dec{decA}
	k := irhelper.Kernel("k", inputs, []*ir.Dec{decB}, move)

	inputs[0] = decB
	if k.Inputs()[0] != decA {
		t.Error("kernel inputs share memory with the slice given to the factory")
	}
	params := k.Params()
	if len(params) != 2 || params[0] != decA || params[1] != decB {
		t.Errorf("unexpected parameters %v", params)
	}
	if !move.DeclareOnly() {
		t.Error("a move from epsilon should only declare its destination")
	}
	if got := k.Type(); got != irtype.Void() {
		t.Errorf("got kernel type %s but want void", got)
	}
}
