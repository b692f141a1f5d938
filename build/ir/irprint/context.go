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
	"fmt"
	"strings"
)

// clause selects the part of a three-clause loop header being rendered.
type clause int

const (
	noClause clause = iota
	initClause
	condClause
	stepClause
)

var headerClauses = [...]clause{initClause, condClause, stepClause}

func (c clause) String() string {
	switch c {
	case noClause:
		return "none"
	case initClause:
		return "init"
	case condClause:
		return "condition"
	case stepClause:
		return "step"
	}
	return fmt.Sprintf("clause(%d)", int(c))
}

// printCtx is the context of the recursive descent.
// It is passed by value so that a callee cannot change the context of its caller.
type printCtx struct {
	// clause of the loop header being rendered.
	clause clause
	// inRange is true while rendering a loop header.
	inRange bool
	// inDecl is true while rendering a declared variable:
	// its shape is printed instead of its arguments.
	inDecl bool
	// ref is true while rendering a reference declaration.
	ref bool
}

func (ctx printCtx) String() string {
	return fmt.Sprintf("context{clause:%s range:%t decl:%t ref:%t}", ctx.clause, ctx.inRange, ctx.inDecl, ctx.ref)
}

// writer writes lines of source code prefixed by the current indentation.
type writer struct {
	b      strings.Builder
	indent string
	depth  int
}

func (w *writer) raw(s string) {
	w.b.WriteString(s)
}

func (w *writer) line(s string) {
	for range w.depth {
		w.b.WriteString(w.indent)
	}
	w.b.WriteString(s)
	w.b.WriteString("\n")
}

// block runs f one level deeper.
// The depth is restored when f returns or panics.
func (w *writer) block(f func()) {
	w.depth++
	defer func() { w.depth-- }()
	f()
}

func (w *writer) String() string {
	return w.b.String()
}
