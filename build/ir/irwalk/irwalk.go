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

// Package irwalk traverses an IR tree without modifying it.
//
// The traversal follows go/ast: a node shared by several parents is
// visited once for each parent referencing it.
package irwalk

import (
	"fmt"
	"iter"

	"github.com/gx-org/kernelgen/build/ir"
)

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node ir.Node) (w Visitor)
}

// Children returns the children of a node in evaluation order.
func Children(node ir.Node) []ir.Node {
	switch n := node.(type) {
	case *ir.IntImm, *ir.UIntImm, *ir.FloatImm, *ir.StringImm, *ir.Epsilon:
		return nil
	case *ir.Unary:
		return []ir.Node{n.X()}
	case *ir.Binary:
		return []ir.Node{n.X(), n.Y()}
	case *ir.Compare:
		return []ir.Node{n.X(), n.Y()}
	case *ir.Select:
		return []ir.Node{n.Cond(), n.TrueValue(), n.FalseValue()}
	case *ir.Call:
		return appendAll(nil, n.Args())
	case *ir.Cast:
		return []ir.Node{n.X()}
	case *ir.Ramp:
		return []ir.Node{n.Base()}
	case *ir.Dec:
		return []ir.Node{n.Var()}
	case *ir.Var:
		return appendAll(nil, n.Args())
	case *ir.Dom:
		return []ir.Node{n.Begin(), n.Extent()}
	case *ir.Index:
		return []ir.Node{n.Dom()}
	case *ir.LoopNest:
		return appendAll(appendAll(nil, n.Indices()), n.Body())
	case *ir.IfThenElse:
		return []ir.Node{n.Cond(), n.Then(), n.Else()}
	case *ir.Move:
		return []ir.Node{n.Dst(), n.Src()}
	case *ir.Kernel:
		children := appendAll(nil, n.Inputs())
		children = appendAll(children, n.Outputs())
		return appendAll(children, n.Body())
	default:
		panic(fmt.Sprintf("irwalk.Children: unexpected node type %T", n))
	}
}

func appendAll[T ir.Node](nodes []ir.Node, children []T) []ir.Node {
	for _, child := range children {
		nodes = append(nodes, child)
	}
	return nodes
}

// Walk traverses an IR tree in depth-first order: it starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor
// w for each of the children of node, followed by a call of
// w.Visit(nil).
func Walk(v Visitor, node ir.Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(ir.Node) bool

func (f inspector) Visit(node ir.Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an IR tree in depth-first order: It starts by
// calling f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the children of node, followed by a call of
// f(nil).
func Inspect(node ir.Node, f func(ir.Node) bool) {
	Walk(inspector(f), node)
}

// Preorder returns an iterator over all the nodes of the tree
// rooted at root in depth-first preorder.
func Preorder(root ir.Node) iter.Seq[ir.Node] {
	return func(yield func(ir.Node) bool) {
		ok := true
		Inspect(root, func(node ir.Node) bool {
			if node != nil {
				ok = ok && yield(node)
			}
			return ok
		})
	}
}
