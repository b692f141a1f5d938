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
	"strconv"
	"strings"

	"github.com/gx-org/kernelgen/build/ir"
)

// expr renders an expression.
// Operands of binary expressions and comparisons are never parenthesised:
// nested expressions are rendered as flat infix text.
func (p *Printer) expr(ctx printCtx, e ir.Expr) string {
	switch n := e.(type) {
	case *ir.IntImm:
		return strconv.FormatInt(n.Value(), 10)
	case *ir.UIntImm:
		return strconv.FormatUint(n.Value(), 10)
	case *ir.FloatImm:
		return strconv.FormatFloat(n.Value(), 'g', -1, 64)
	case *ir.StringImm:
		return n.Value()
	case *ir.Unary:
		return n.Op().String() + p.expr(ctx, n.X())
	case *ir.Binary:
		return p.expr(ctx, n.X()) + " " + n.Op().String() + " " + p.expr(ctx, n.Y())
	case *ir.Compare:
		return p.expr(ctx, n.X()) + " " + n.Op().String() + " " + p.expr(ctx, n.Y())
	case *ir.Select:
		return "select(" + p.expr(ctx, n.Cond()) +
			", " + p.expr(ctx, n.TrueValue()) +
			", " + p.expr(ctx, n.FalseValue()) + ")"
	case *ir.Call:
		var b strings.Builder
		b.WriteString("call_" + n.CallType().String() + "(" + n.Name())
		for _, arg := range n.Args() {
			b.WriteString(", " + p.expr(ctx, arg))
		}
		b.WriteString(")")
		return b.String()
	case *ir.Cast:
		return "cast<" + n.Type().String() + ">(" + p.expr(ctx, n.X()) + ")"
	case *ir.Ramp:
		return "ramp(" + p.expr(ctx, n.Base()) +
			", " + strconv.Itoa(n.Stride()) +
			", " + strconv.Itoa(n.Lanes()) + ")"
	case *ir.Dec:
		return p.dec(ctx, n)
	case *ir.Var:
		return p.variable(ctx, n)
	case *ir.Dom:
		return p.dom(ctx, n)
	case *ir.Index:
		return p.index(ctx, n)
	case *ir.Epsilon:
		return ""
	default:
		return p.internal(e)
	}
}

func (p *Printer) dec(ctx printCtx, n *ir.Dec) string {
	declCtx := printCtx{
		inDecl: true,
		ref:    ctx.ref || n.IsRef(),
	}
	return n.Type().String() + " " + p.expr(declCtx, n.Var())
}

func (p *Printer) variable(ctx printCtx, n *ir.Var) string {
	var b strings.Builder
	if ctx.ref {
		b.WriteString("(&" + n.Name() + ")")
	} else {
		b.WriteString(n.Name())
	}
	if ctx.inDecl {
		for _, dim := range n.Shape() {
			b.WriteString("[" + strconv.Itoa(dim) + "]")
		}
		return b.String()
	}
	for _, arg := range n.Args() {
		b.WriteString("[" + p.expr(printCtx{}, arg) + "]")
	}
	return b.String()
}

// isZero returns true if the expression is the literal 0.
func isZero(e ir.Expr) bool {
	switch n := e.(type) {
	case *ir.IntImm:
		return n.Value() == 0
	case *ir.UIntImm:
		return n.Value() == 0
	}
	return false
}

func (p *Printer) dom(ctx printCtx, n *ir.Dom) string {
	valueCtx := printCtx{}
	switch ctx.clause {
	case initClause:
		return p.expr(valueCtx, n.Begin())
	case condClause:
		extent := p.expr(valueCtx, n.Extent())
		if isZero(n.Begin()) {
			return extent
		}
		return p.expr(valueCtx, n.Begin()) + " + " + extent
	case stepClause:
		return ""
	default:
		return p.diag(n, ctx, "domain rendered outside of a loop header clause")
	}
}

func (p *Printer) index(ctx printCtx, n *ir.Index) string {
	if !ctx.inRange {
		return n.Name()
	}
	switch ctx.clause {
	case initClause:
		return "int " + n.Name() + " = " + p.expr(ctx, n.Dom()) + "; "
	case condClause:
		return n.Name() + " < " + p.expr(ctx, n.Dom()) + "; "
	case stepClause:
		return n.Name() + "++"
	default:
		return p.diag(n, ctx, "index rendered outside of a loop header clause")
	}
}
