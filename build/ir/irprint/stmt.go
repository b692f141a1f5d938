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

package irprint

import (
	"github.com/gx-org/kernelgen/build/ir"
)

func (p *Printer) stmt(w *writer, ctx printCtx, s ir.Stmt) {
	switch n := s.(type) {
	case *ir.LoopNest:
		p.loops(w, ctx, n.Indices(), n.Body())
	case *ir.IfThenElse:
		w.line("if (" + p.expr(ctx, n.Cond()) + ") {")
		w.block(func() { p.stmt(w, ctx, n.Then()) })
		w.line("} else {")
		w.block(func() { p.stmt(w, ctx, n.Else()) })
		w.line("}")
	case *ir.Move:
		line := p.expr(ctx, n.Dst())
		if !n.DeclareOnly() {
			line += " = " + p.expr(ctx, n.Src())
		}
		w.line(line + ";\t//  <" + n.MoveType().String() + "> ")
	default:
		p.internal(s)
	}
}

// loops opens one loop per index, renders the body in the innermost loop,
// then closes the loops in reverse order.
func (p *Printer) loops(w *writer, ctx printCtx, indices []*ir.Index, body []ir.Stmt) {
	if len(indices) == 0 {
		for _, stmt := range body {
			p.stmt(w, ctx, stmt)
		}
		return
	}
	w.line("for (" + p.header(ctx, indices[0]) + ") {")
	w.block(func() { p.loops(w, ctx, indices[1:], body) })
	w.line("}")
}

// header renders the three clauses of a loop header by rendering
// the same index once per clause.
func (p *Printer) header(ctx printCtx, index *ir.Index) string {
	rangeCtx := ctx
	rangeCtx.inRange = true
	s := ""
	for _, c := range headerClauses {
		rangeCtx.clause = c
		s += p.expr(rangeCtx, index)
	}
	return s
}
