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

package irmutate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/kernelgen/build/ir"
	"github.com/gx-org/kernelgen/build/ir/irhelper"
	"github.com/gx-org/kernelgen/build/ir/irmutate"
	"github.com/gx-org/kernelgen/build/ir/irprint"
	"github.com/gx-org/kernelgen/examples/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, k *ir.Kernel) string {
	t.Helper()
	src, err := irprint.Kernel(k)
	require.NoError(t, err)
	return src
}

func TestIdentityIsIdempotent(t *testing.T) {
	for name, build := range kernels.All {
		t.Run(name, func(t *testing.T) {
			in := build()
			before := render(t, in)
			out, err := irmutate.Kernel(irmutate.Identity, in)
			require.NoError(t, err)
			assert.NotSame(t, in, out)
			if diff := cmp.Diff(render(t, out), before); diff != "" {
				t.Errorf("identity rewrite changed the source (-got +want):\n%s", diff)
			}
			if diff := cmp.Diff(render(t, in), before); diff != "" {
				t.Errorf("rewrite modified its input (-got +want):\n%s", diff)
			}
		})
	}
}

func gemmMove(t *testing.T, k *ir.Kernel) *ir.Move {
	t.Helper()
	require.Len(t, k.Body(), 1)
	loop, ok := k.Body()[0].(*ir.LoopNest)
	require.True(t, ok, "got %T but want a loop nest", k.Body()[0])
	require.Len(t, loop.Body(), 1)
	move, ok := loop.Body()[0].(*ir.Move)
	require.True(t, ok, "got %T but want a move", loop.Body()[0])
	return move
}

func TestSharingIsPreserved(t *testing.T) {
	in := kernels.Gemm()
	out, err := irmutate.Kernel(nil, in)
	require.NoError(t, err)

	inMove, outMove := gemmMove(t, in), gemmMove(t, out)
	assert.NotSame(t, inMove.Dst(), outMove.Dst())
	sum, ok := outMove.Src().(*ir.Binary)
	require.True(t, ok)
	// C is read and written by the same move.
	assert.Same(t, outMove.Dst(), sum.X())
	// C is declared with the same variable node.
	assert.Same(t, outMove.Dst(), out.Outputs()[0].Var())
}

func TestRenameVariable(t *testing.T) {
	rename := irmutate.Func(func(r *irmutate.Rewriter, n ir.Node) (ir.Node, bool) {
		v, ok := n.(*ir.Var)
		if !ok || v.Name() != "C" {
			return nil, false
		}
		args := make([]ir.Expr, len(v.Args()))
		for i, arg := range v.Args() {
			args[i] = r.Expr(arg)
		}
		renamed, err := ir.NewVar(v.Type(), "out", args, v.Shape())
		require.NoError(t, err)
		return renamed, true
	})
	out, err := irmutate.Kernel(rename, kernels.Gemm())
	require.NoError(t, err)
	src := render(t, out)
	assert.Contains(t, src, "float (&out)[1024][512]) {")
	assert.Contains(t, src, "out[i][j] = out[i][j] + A[i][k] * B[k][j];")
	assert.NotContains(t, src, "C[")
}

func TestOverrideAfterDefault(t *testing.T) {
	// Swap the operands of every multiplication after rewriting them.
	swap := irmutate.Func(func(r *irmutate.Rewriter, n ir.Node) (ir.Node, bool) {
		bin, ok := n.(*ir.Binary)
		if !ok || bin.Op() != ir.Mul {
			return nil, false
		}
		def, ok := r.Default(bin).(*ir.Binary)
		if !ok {
			return nil, true
		}
		swapped, err := ir.NewBinary(def.Type(), def.Op(), def.Y(), def.X())
		require.NoError(t, err)
		return swapped, true
	})
	out, err := irmutate.Kernel(swap, kernels.Gemm())
	require.NoError(t, err)
	assert.Contains(t, render(t, out), "C[i][j] = C[i][j] + B[k][j] * A[i][k];")
}

func TestRewriteErrors(t *testing.T) {
	a := irhelper.Var("a", nil)
	stmtForExpr := irmutate.Func(func(r *irmutate.Rewriter, n ir.Node) (ir.Node, bool) {
		if _, ok := n.(*ir.FloatImm); ok {
			return irhelper.Declare(a), true
		}
		return nil, false
	})
	_, err := irmutate.Stmt(stmtForExpr, irhelper.Move(a, irhelper.Float(1)))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "FloatImm 1: rewritten into Move"), "unexpected error: %v", err)

	epsilonDst := irmutate.Func(func(r *irmutate.Rewriter, n ir.Node) (ir.Node, bool) {
		if v, ok := n.(*ir.Var); ok && v.Name() == "a" {
			return irhelper.Epsilon(), true
		}
		return nil, false
	})
	_, err = irmutate.Stmt(epsilonDst, irhelper.Move(a, irhelper.Float(1)))
	assert.ErrorContains(t, err, "destination cannot be epsilon")

	refDropped := irmutate.Func(func(r *irmutate.Rewriter, n ir.Node) (ir.Node, bool) {
		if dec, ok := n.(*ir.Dec); ok {
			return irhelper.Dec(dec.Var(), false), true
		}
		return nil, false
	})
	_, err = irmutate.Kernel(refDropped, kernels.Demo())
	assert.ErrorContains(t, err, "is not declared as a reference")
}

func TestExprRewrite(t *testing.T) {
	x := irhelper.Var("x", nil)
	double := irmutate.Func(func(r *irmutate.Rewriter, n ir.Node) (ir.Node, bool) {
		if n == ir.Node(x) {
			return irhelper.Binary(ir.Mul, irhelper.Float(2), x), true
		}
		return nil, false
	})
	out, err := irmutate.Expr(double, irhelper.Binary(ir.Add, x, x))
	require.NoError(t, err)
	assert.Equal(t, "2 * x + 2 * x", irprint.New().Expr(out))
}
