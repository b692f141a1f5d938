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

// Package irprint renders kernels as C++ source code.
//
// Rendering is deterministic: the same kernel always produces the same
// text, byte for byte. The spelling of operators, keywords, and comments
// is part of the output contract.
package irprint

import (
	"log/slog"
	"strings"

	"github.com/gx-org/kernelgen/build/fmterr"
	"github.com/gx-org/kernelgen/build/ir"
)

// Include is the first line of every rendered kernel.
const Include = `#include "../run.h"`

type (
	// Printer renders IR nodes.
	// A printer accumulates the diagnostics reported while rendering.
	// It is not safe for concurrent use.
	Printer struct {
		logger *slog.Logger
		indent string
		errs   fmterr.Errors
	}

	// Option configures a printer.
	Option func(*Printer)
)

// WithLogger sets the logger to which diagnostics are reported.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Printer) {
		p.logger = logger
	}
}

// WithIndent sets the string written once per nesting level
// at the beginning of each statement. The default is two spaces.
func WithIndent(indent string) Option {
	return func(p *Printer) {
		p.indent = indent
	}
}

// New returns a new printer.
func New(opts ...Option) *Printer {
	p := &Printer{
		logger: slog.Default(),
		indent: "  ",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Kernel renders a kernel as a C++ function.
// Diagnostics are available from Err once the kernel has been rendered.
func (p *Printer) Kernel(k *ir.Kernel) string {
	w := p.newWriter()
	p.kernel(w, k)
	return w.String()
}

// Stmt renders a statement at the top level.
func (p *Printer) Stmt(s ir.Stmt) string {
	w := p.newWriter()
	p.stmt(w, printCtx{}, s)
	return w.String()
}

// Expr renders an expression outside of any declaration or loop header.
func (p *Printer) Expr(e ir.Expr) string {
	return p.expr(printCtx{}, e)
}

// Err returns the diagnostics reported since the printer was created,
// or nil if there was none.
// Diagnostics are not fatal: the fragment in error is rendered empty
// and the rest of the output is complete.
func (p *Printer) Err() error {
	return p.errs.ToError()
}

// Kernel renders a kernel with a new printer.
// The text is always returned; the error lists the diagnostics, if any.
func Kernel(k *ir.Kernel, opts ...Option) (string, error) {
	p := New(opts...)
	src := p.Kernel(k)
	return src, p.Err()
}

func (p *Printer) newWriter() *writer {
	return &writer{indent: p.indent}
}

func (p *Printer) diag(node ir.Node, ctx printCtx, msg string) string {
	p.errs.Append(ir.Errorf(node, "%s in %s", msg, ctx))
	p.logger.Warn(msg, "node", ir.Describe(node), "clause", ctx.clause.String())
	return ""
}

func (p *Printer) internal(node ir.Node) string {
	err := fmterr.Internalf(ir.Describe(node), "cannot print node of type %T", node)
	p.errs.Append(err)
	p.logger.Error("cannot print node", "node", ir.Describe(node), "error", err)
	return ""
}

func (p *Printer) kernel(w *writer, k *ir.Kernel) {
	w.raw(Include + "\n")
	w.raw("// <" + k.KernelType().String() + ">\n\n")

	paramCtx := printCtx{ref: true, inDecl: true}
	params := make([]string, 0, len(k.Inputs())+len(k.Outputs()))
	for _, param := range k.Params() {
		params = append(params, p.expr(paramCtx, param))
	}
	w.line("void " + k.Name() + "(" + strings.Join(params, ", ") + ") {")
	w.block(func() {
		for _, stmt := range k.Body() {
			p.stmt(w, printCtx{}, stmt)
		}
	})
	w.line("}")
}
