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

// Package irmutate rewrites IR trees.
//
// A rewrite never modifies its input: it returns a new tree in which
// every node has been rebuilt, either by a Mutator override or by the
// default reconstruction from the rewritten children.
// A node shared by several parents in the input is rewritten once and
// the result is shared in the output.
package irmutate

import (
	"reflect"

	"github.com/gx-org/kernelgen/build/fmterr"
	"github.com/gx-org/kernelgen/build/ir"
)

type (
	// Mutator overrides the rewriting of some nodes.
	// Mutate returns the replacement of n and true,
	// or false to let the rewriter rebuild n from its rewritten children.
	// An override can call r.Default(n) to apply the default rewrite
	// before transforming its result.
	Mutator interface {
		Mutate(r *Rewriter, n ir.Node) (ir.Node, bool)
	}

	// Func is a function implementing Mutator.
	Func func(r *Rewriter, n ir.Node) (ir.Node, bool)

	// Rewriter applies a Mutator to a tree.
	Rewriter struct {
		mutator Mutator
		done    map[ir.Node]ir.Node
		errs    fmterr.Errors
	}
)

// Mutate calls f.
func (f Func) Mutate(r *Rewriter, n ir.Node) (ir.Node, bool) {
	return f(r, n)
}

type identity struct{}

func (identity) Mutate(*Rewriter, ir.Node) (ir.Node, bool) {
	return nil, false
}

// Identity is a mutator without override: it rebuilds an equivalent tree.
var Identity Mutator = identity{}

// New returns a rewriter given a mutator.
// A nil mutator is equivalent to Identity.
func New(m Mutator) *Rewriter {
	if m == nil {
		m = Identity
	}
	return &Rewriter{
		mutator: m,
		done:    make(map[ir.Node]ir.Node),
	}
}

// Kernel rewrites a kernel with a new rewriter.
func Kernel(m Mutator, k *ir.Kernel) (*ir.Kernel, error) {
	r := New(m)
	out := r.Kernel(k)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stmt rewrites a statement with a new rewriter.
func Stmt(m Mutator, s ir.Stmt) (ir.Stmt, error) {
	r := New(m)
	out := r.Stmt(s)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Expr rewrites an expression with a new rewriter.
func Expr(m Mutator, e ir.Expr) (ir.Expr, error) {
	r := New(m)
	out := r.Expr(e)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Err returns the errors that occurred while rewriting, or nil.
func (r *Rewriter) Err() error {
	return r.errs.ToError()
}

// Node rewrites a node.
// It returns nil if the node could not be rewritten; the error is then available from Err.
func (r *Rewriter) Node(n ir.Node) ir.Node {
	if ir.IsNil(n) {
		return nil
	}
	if out, ok := r.done[n]; ok {
		return out
	}
	out, ok := r.mutator.Mutate(r, n)
	if !ok {
		out = r.Default(n)
	}
	r.done[n] = out
	return out
}

// Expr rewrites an expression.
func (r *Rewriter) Expr(e ir.Expr) ir.Expr {
	return as[ir.Expr](r, e, r.Node(e))
}

// Stmt rewrites a statement.
func (r *Rewriter) Stmt(s ir.Stmt) ir.Stmt {
	return as[ir.Stmt](r, s, r.Node(s))
}

// Kernel rewrites a kernel.
func (r *Rewriter) Kernel(k *ir.Kernel) *ir.Kernel {
	return as[*ir.Kernel](r, k, r.Node(k))
}

// as checks that the rewrite of a node has the kind required by its parent.
func as[T ir.Node](r *Rewriter, in, out ir.Node) T {
	var zero T
	if ir.IsNil(out) {
		return zero
	}
	outT, ok := out.(T)
	if !ok {
		r.errs.Appendf(ir.Describe(in), "rewritten into %s but want %s", ir.Describe(out), reflect.TypeFor[T]())
		return zero
	}
	return outT
}

func rewriteAll[T ir.Node](r *Rewriter, nodes []T) ([]T, bool) {
	out := make([]T, len(nodes))
	ok := true
	for i, n := range nodes {
		out[i] = as[T](r, n, r.Node(n))
		ok = ok && !ir.IsNil(out[i])
	}
	return out, ok
}

// check returns n if err is nil. Otherwise, it records the error and returns nil.
func (r *Rewriter) check(n ir.Node, err error) ir.Node {
	if err != nil {
		r.errs.Append(err)
		return nil
	}
	return n
}
