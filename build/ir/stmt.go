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

import (
	"slices"

	"github.com/gx-org/kernelgen/build/ir/irtype"
)

// ----------------------------------------------------------------------------
// Statements.
type (
	// LoopNest is a perfect nest of loops, one per index,
	// executing its body in the innermost loop.
	LoopNest struct {
		indices []*Index
		body    []Stmt
	}

	// IfThenElse executes one of two statements given a condition.
	IfThenElse struct {
		cond     Expr
		thenCase Stmt
		elseCase Stmt
	}

	// Move assigns a value to a destination.
	// If the source is Epsilon, the destination is only declared.
	Move struct {
		dst, src Expr
		moveType MoveType
	}
)

// NewLoopNest returns a loop nest.
func NewLoopNest(indices []*Index, body []Stmt) (*LoopNest, error) {
	n := &LoopNest{indices: slices.Clone(indices), body: slices.Clone(body)}
	return result(n, firstErr(
		checkOperands(n, "index", indices...),
		checkOperands(n, "statement", body...),
	))
}

func (*LoopNest) node() {}
func (*LoopNest) stmt() {}

// Type returns the void type.
func (n *LoopNest) Type() irtype.Type { return irtype.Void() }

// Indices returns the loop indices from the outermost to the innermost loop.
// The slice must not be modified.
func (n *LoopNest) Indices() []*Index { return n.indices }

// Body returns the statements of the innermost loop.
// The slice must not be modified.
func (n *LoopNest) Body() []Stmt { return n.body }

// NewIfThenElse returns a conditional statement.
func NewIfThenElse(cond Expr, thenCase, elseCase Stmt) (*IfThenElse, error) {
	n := &IfThenElse{cond: cond, thenCase: thenCase, elseCase: elseCase}
	return result(n, firstErr(
		checkOperands(n, "condition", cond),
		checkOperands(n, "branch", thenCase, elseCase),
	))
}

func (*IfThenElse) node() {}
func (*IfThenElse) stmt() {}

// Type returns the void type.
func (n *IfThenElse) Type() irtype.Type { return irtype.Void() }

// Cond returns the condition.
func (n *IfThenElse) Cond() Expr { return n.cond }

// Then returns the statement executed when the condition holds.
func (n *IfThenElse) Then() Stmt { return n.thenCase }

// Else returns the statement executed when the condition does not hold.
func (n *IfThenElse) Else() Stmt { return n.elseCase }

// NewMove returns an assignment of src to dst.
func NewMove(dst, src Expr, moveType MoveType) (*Move, error) {
	n := &Move{dst: dst, src: src, moveType: moveType}
	if !moveType.Valid() {
		return nil, Errorf(n, "undefined move type")
	}
	if err := checkOperands(n, "operand", dst, src); err != nil {
		return nil, err
	}
	if IsEpsilon(dst) {
		return nil, Errorf(n, "destination cannot be epsilon")
	}
	return n, nil
}

func (*Move) node() {}
func (*Move) stmt() {}

// Type returns the void type.
func (n *Move) Type() irtype.Type { return irtype.Void() }

// Dst returns the destination.
func (n *Move) Dst() Expr { return n.dst }

// Src returns the source. Epsilon if the move only declares its destination.
func (n *Move) Src() Expr { return n.src }

// MoveType returns the memory space transfer.
func (n *Move) MoveType() MoveType { return n.moveType }

// DeclareOnly returns true if the move has no source.
func (n *Move) DeclareOnly() bool { return IsEpsilon(n.src) }
