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

// Package ir is the kernel Intermediate Representation (IR) tree.
//
// A tree describes a tensor computation: loop indices, array accesses,
// arithmetic, and data movements. It is built bottom-up with the New
// functions of this package, which validate their operands.
//
// Nodes are immutable once built and may be shared: the same node can
// be the child of several parents. Passes rewriting a tree
// (see package irmutate) always build new nodes.
package ir

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/gx-org/kernelgen/build/fmterr"
	"github.com/gx-org/kernelgen/build/ir/irtype"
)

// ----------------------------------------------------------------------------
// Types of node in the tree.
type (
	// Node in the tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()

		// Type of the value computed by the node.
		// Statements and kernels have a void type.
		Type() irtype.Type
	}

	// Expr is a node computing a value.
	Expr interface {
		Node
		expr()
	}

	// Stmt is a node with an effect.
	Stmt interface {
		Node
		stmt()
	}

	// Group is a unit of compilation.
	Group interface {
		Node
		group()
	}
)

var (
	_ Expr = (*IntImm)(nil)
	_ Expr = (*UIntImm)(nil)
	_ Expr = (*FloatImm)(nil)
	_ Expr = (*StringImm)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Compare)(nil)
	_ Expr = (*Select)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Cast)(nil)
	_ Expr = (*Ramp)(nil)
	_ Expr = (*Dec)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Dom)(nil)
	_ Expr = (*Index)(nil)
	_ Expr = (*Epsilon)(nil)

	_ Stmt = (*LoopNest)(nil)
	_ Stmt = (*IfThenElse)(nil)
	_ Stmt = (*Move)(nil)

	_ Group = (*Kernel)(nil)
)

// IsNil returns true if a node is nil, including a nil pointer stored in the interface.
func IsNil(node Node) bool {
	if node == nil {
		return true
	}
	val := reflect.ValueOf(node)
	return val.Kind() == reflect.Pointer && val.IsNil()
}

// IsEpsilon returns true if the expression is the no-value marker.
func IsEpsilon(expr Expr) bool {
	_, ok := expr.(*Epsilon)
	return ok
}

// ValidName returns true if name can be used as an identifier in the generated source.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case 'a' <= r && r <= 'z':
		case 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Describe returns a short human readable description of a node,
// used to locate errors.
func Describe(node Node) string {
	if IsNil(node) {
		return fmt.Sprintf("%T(nil)", node)
	}
	switch nodeT := node.(type) {
	case *IntImm:
		return fmt.Sprintf("IntImm %d", nodeT.val)
	case *UIntImm:
		return fmt.Sprintf("UIntImm %d", nodeT.val)
	case *FloatImm:
		return fmt.Sprintf("FloatImm %g", nodeT.val)
	case *StringImm:
		return fmt.Sprintf("StringImm %q", nodeT.val)
	case *Unary:
		return "Unary " + nodeT.op.String()
	case *Binary:
		return "Binary " + nodeT.op.String()
	case *Compare:
		return "Compare " + nodeT.op.String()
	case *Call:
		return "Call " + nodeT.name
	case *Cast:
		return "Cast " + nodeT.typ.String()
	case *Var:
		return "Var " + nodeT.name
	case *Dec:
		if nodeT.v == nil {
			return "Dec"
		}
		return "Dec " + nodeT.v.name
	case *Index:
		return "Index " + nodeT.name
	case *Move:
		return "Move " + nodeT.moveType.String()
	case *Kernel:
		return "Kernel " + nodeT.name
	}
	return fmt.Sprintf("%T", node)[len("*ir."):]
}

// Errorf returns an error attached to a node.
func Errorf(node Node, format string, a ...any) error {
	return fmterr.Errorf(Describe(node), format, a...)
}

func checkType(node Node, typ irtype.Type) error {
	if !typ.IsValid() {
		return Errorf(node, "invalid type")
	}
	return nil
}

func checkOperands[T Node](node Node, what string, operands ...T) error {
	for i, op := range operands {
		if IsNil(op) {
			if len(operands) == 1 {
				return Errorf(node, "%s is nil", what)
			}
			return Errorf(node, "%s %d is nil", what, i)
		}
	}
	return nil
}

// result returns the node only if err is nil.
func result[T Node](n T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return n, nil
}

func firstErr(errs ...error) error {
	i := slices.IndexFunc(errs, func(err error) bool { return err != nil })
	if i < 0 {
		return nil
	}
	return errs[i]
}
