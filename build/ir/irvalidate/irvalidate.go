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

// Package irvalidate checks the structure of a kernel beyond what
// the ir.New functions can check locally.
package irvalidate

import (
	"github.com/gx-org/kernelgen/build/fmterr"
	"github.com/gx-org/kernelgen/build/ir"
	"github.com/gx-org/kernelgen/build/ir/irwalk"
)

// Check is an additional check run once on each node of a kernel.
type Check func(errs *fmterr.Errors, node ir.Node)

type validator struct {
	errs   fmterr.Errors
	checks []Check

	// checked nodes. Checks not depending on the position of the
	// node in the tree are only run once.
	checked map[ir.Node]bool
	// active nodes on the path from the root.
	active map[ir.Node]bool
	// bound counts the loop nests binding an index name.
	bound map[string]int
	// inParams is true while validating the kernel parameters.
	inParams bool
}

// Validate a kernel. It returns all the errors found, combined with multierr.
//
// The following is checked:
//   - the tree has no cycle,
//   - kernel parameters have distinct names,
//   - a variable accessed with a static shape has one index expression per axis,
//   - an index appears once in a loop nest and does not shadow an enclosing index,
//   - an index used by a statement is bound by an enclosing loop nest.
func Validate(k *ir.Kernel, checks ...Check) error {
	v := &validator{
		checks:  checks,
		checked: make(map[ir.Node]bool),
		active:  make(map[ir.Node]bool),
		bound:   make(map[string]int),
	}
	v.errs.Push(fmterr.PrefixWith("kernel %s: ", k.Name()))
	v.validate(k)
	v.errs.Pop()
	return v.errs.ToError()
}

func (v *validator) validate(node ir.Node) {
	if ir.IsNil(node) {
		v.errs.Append(fmterr.Internal(ir.Errorf(node, "nil node in tree")))
		return
	}
	if v.active[node] {
		v.errs.Append(ir.Errorf(node, "node is its own ancestor"))
		return
	}
	v.active[node] = true
	defer delete(v.active, node)

	v.checkOnce(node)
	switch nodeT := node.(type) {
	case *ir.Kernel:
		v.validateKernel(nodeT)
	case *ir.LoopNest:
		v.validateLoopNest(nodeT)
	case *ir.Index:
		if !v.inParams && v.bound[nodeT.Name()] == 0 {
			v.errs.Append(ir.Errorf(nodeT, "index is not bound by an enclosing loop nest"))
		}
	default:
		for _, child := range irwalk.Children(node) {
			v.validate(child)
		}
	}
}

// checkOnce runs the checks independent of the position of a node
// the first time the node is found.
func (v *validator) checkOnce(node ir.Node) {
	if v.checked[node] {
		return
	}
	v.checked[node] = true
	for _, check := range v.checks {
		check(&v.errs, node)
	}
	v.checkNode(node)
}

func (v *validator) checkNode(node ir.Node) {
	switch nodeT := node.(type) {
	case *ir.Var:
		args, shape := nodeT.Args(), nodeT.Shape()
		if len(args) > 0 && len(shape) > 0 && len(args) != len(shape) {
			v.errs.Append(ir.Errorf(nodeT, "accessed with %d index expressions but has %d axes", len(args), len(shape)))
		}
	case *ir.Kernel:
		names := make(map[string]bool)
		for _, param := range nodeT.Params() {
			name := param.Var().Name()
			if names[name] {
				v.errs.Append(ir.Errorf(param, "parameter name %s already used", name))
			}
			names[name] = true
		}
	}
}

func (v *validator) validateKernel(k *ir.Kernel) {
	v.inParams = true
	for _, param := range k.Params() {
		v.validate(param)
	}
	v.inParams = false
	for _, stmt := range k.Body() {
		v.validate(stmt)
	}
}

func (v *validator) validateLoopNest(nest *ir.LoopNest) {
	inNest := make(map[string]bool)
	for _, index := range nest.Indices() {
		name := index.Name()
		switch {
		case inNest[name]:
			v.errs.Append(ir.Errorf(index, "index appears more than once in the loop nest"))
			continue
		case v.bound[name] > 0:
			v.errs.Append(ir.Errorf(index, "index shadows an index of an enclosing loop nest"))
		}
		// The index is bound, not used: only its domain is validated.
		v.checkOnce(index)
		// The domain can use the indices of the outer loops.
		v.validate(index.Dom())
		inNest[name] = true
		v.bound[name]++
	}
	for _, stmt := range nest.Body() {
		v.validate(stmt)
	}
	for name := range inNest {
		v.bound[name]--
	}
}
