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

// Package irinfo collects information about a kernel IR tree.
package irinfo

import (
	"fmt"
	"slices"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/kernelgen/build/ir"
	"github.com/gx-org/kernelgen/build/ir/irwalk"
	"golang.org/x/exp/maps"
)

// Indices returns the loop indices bound or used in a tree,
// unique by name, in the order they are first visited.
func Indices(node ir.Node) []*ir.Index {
	seen := make(map[string]bool)
	var indices []*ir.Index
	for n := range irwalk.Preorder(node) {
		index, ok := n.(*ir.Index)
		if !ok || seen[index.Name()] {
			continue
		}
		seen[index.Name()] = true
		indices = append(indices, index)
	}
	return indices
}

// Vars returns the sorted names of all the variables in a tree.
func Vars(node ir.Node) []string {
	names := make(map[string]bool)
	for n := range irwalk.Preorder(node) {
		if v, ok := n.(*ir.Var); ok {
			names[v.Name()] = true
		}
	}
	keys := maps.Keys(names)
	slices.Sort(keys)
	return keys
}

// Count returns the number of node references in a tree, by kind of node.
// A node shared by several parents is counted once per parent.
func Count(node ir.Node) map[string]int {
	count := make(map[string]int)
	for n := range irwalk.Preorder(node) {
		count[kind(n)]++
	}
	return count
}

// Kinds returns the sorted kinds of a count.
func Kinds(count map[string]int) []string {
	keys := maps.Keys(count)
	slices.Sort(keys)
	return keys
}

func kind(node ir.Node) string {
	return fmt.Sprintf("%T", node)[len("*ir."):]
}

// Param describes the memory bound to a kernel parameter.
type Param struct {
	// Name of the parameter.
	Name string
	// Input is true for kernel inputs, false for outputs.
	Input bool
	// Shape of the array. DType is invalid if the element type
	// has no backend equivalent.
	Shape *shape.Shape
}

// Bytes returns the memory footprint of the parameter.
// It returns 0 if the element type has no backend equivalent.
func (p Param) Bytes() int {
	if p.Shape.DType == dtype.Invalid {
		return 0
	}
	return p.Shape.Size() * dtype.Sizeof(p.Shape.DType)
}

func (p Param) String() string {
	dir := "out"
	if p.Input {
		dir = "in"
	}
	return fmt.Sprintf("%s %s %v%v", dir, p.Name, p.Shape.DType, p.Shape.AxisLengths)
}

// Params returns the parameters of a kernel, inputs first.
func Params(k *ir.Kernel) []Param {
	params := make([]Param, 0, len(k.Inputs())+len(k.Outputs()))
	for i, dec := range k.Params() {
		v := dec.Var()
		params = append(params, Param{
			Name:  v.Name(),
			Input: i < len(k.Inputs()),
			Shape: &shape.Shape{
				DType:       dec.Type().DType(),
				AxisLengths: slices.Clone(v.Shape()),
			},
		})
	}
	return params
}

// Footprint returns the total memory footprint of the parameters of a kernel.
func Footprint(k *ir.Kernel) int {
	total := 0
	for _, param := range Params(k) {
		total += param.Bytes()
	}
	return total
}
