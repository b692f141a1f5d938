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

// Kernel is a function computing its outputs from its inputs.
// It is the unit handed to the printer.
type Kernel struct {
	name       string
	inputs     []*Dec
	outputs    []*Dec
	body       []Stmt
	kernelType KernelType
}

// NewKernel returns a kernel.
// Inputs and outputs must be reference declarations.
func NewKernel(name string, inputs, outputs []*Dec, body []Stmt, kernelType KernelType) (*Kernel, error) {
	n := &Kernel{
		name:       name,
		inputs:     slices.Clone(inputs),
		outputs:    slices.Clone(outputs),
		body:       slices.Clone(body),
		kernelType: kernelType,
	}
	if !ValidName(name) {
		return nil, Errorf(n, "invalid kernel name %q", name)
	}
	if !kernelType.Valid() {
		return nil, Errorf(n, "undefined kernel type")
	}
	if err := firstErr(
		checkOperands(n, "input", inputs...),
		checkOperands(n, "output", outputs...),
		checkOperands(n, "statement", body...),
	); err != nil {
		return nil, err
	}
	for _, param := range n.Params() {
		if !param.IsRef() {
			return nil, Errorf(n, "parameter %s is not declared as a reference", param.Var().Name())
		}
	}
	return n, nil
}

func (*Kernel) node()  {}
func (*Kernel) group() {}

// Type returns the void type.
func (n *Kernel) Type() irtype.Type { return irtype.Void() }

// Name of the kernel function.
func (n *Kernel) Name() string { return n.name }

// Inputs returns the declarations of the input parameters.
// The slice must not be modified.
func (n *Kernel) Inputs() []*Dec { return n.inputs }

// Outputs returns the declarations of the output parameters.
// The slice must not be modified.
func (n *Kernel) Outputs() []*Dec { return n.outputs }

// Params returns the inputs followed by the outputs.
func (n *Kernel) Params() []*Dec {
	return slices.Concat(n.inputs, n.outputs)
}

// Body returns the statements of the kernel.
// The slice must not be modified.
func (n *Kernel) Body() []Stmt { return n.body }

// KernelType returns the target of the kernel.
func (n *Kernel) KernelType() KernelType { return n.kernelType }
