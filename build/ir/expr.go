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

	"github.com/gx-org/kernelgen/build/ir/irkind"
	"github.com/gx-org/kernelgen/build/ir/irtype"
)

// ----------------------------------------------------------------------------
// Expressions.
type (
	// IntImm is a signed integer literal.
	IntImm struct {
		typ irtype.Type
		val int64
	}

	// UIntImm is an unsigned integer literal.
	UIntImm struct {
		typ irtype.Type
		val uint64
	}

	// FloatImm is a floating point literal.
	FloatImm struct {
		typ irtype.Type
		val float64
	}

	// StringImm is a string literal.
	StringImm struct {
		typ irtype.Type
		val string
	}

	// Unary applies an operator to a single operand.
	Unary struct {
		typ irtype.Type
		op  UnaryOp
		x   Expr
	}

	// Binary applies an arithmetic or logical operator to two operands.
	Binary struct {
		typ  irtype.Type
		op   BinaryOp
		x, y Expr
	}

	// Compare compares two operands.
	Compare struct {
		typ  irtype.Type
		op   CompareOp
		x, y Expr
	}

	// Select picks a value given a condition.
	Select struct {
		typ        irtype.Type
		cond       Expr
		trueValue  Expr
		falseValue Expr
	}

	// Call calls a function by name.
	Call struct {
		typ      irtype.Type
		callType CallType
		name     string
		args     []Expr
	}

	// Cast converts a value to another type.
	Cast struct {
		typ irtype.Type
		x   Expr
	}

	// Ramp is a vectorized access: lanes values starting at base
	// and separated by stride.
	Ramp struct {
		typ    irtype.Type
		base   Expr
		stride int
		lanes  int
	}

	// Dec declares a variable.
	// A reference declaration binds the variable to an existing array.
	Dec struct {
		typ   irtype.Type
		v     *Var
		isRef bool
	}

	// Var is an array or a scalar variable.
	// Args are the index expressions used to access the variable.
	// Shape are the static dimensions used to declare the variable.
	Var struct {
		typ   irtype.Type
		name  string
		args  []Expr
		shape []int
	}

	// Dom is the half-open iteration range [begin, begin+extent).
	Dom struct {
		typ           irtype.Type
		begin, extent Expr
	}

	// Index is a loop variable iterating over a domain.
	Index struct {
		typ  irtype.Type
		name string
		dom  *Dom
		role IndexType
	}

	// Epsilon marks the absence of a value.
	Epsilon struct {
		typ irtype.Type
	}
)

// NewIntImm returns a signed integer literal.
func NewIntImm(typ irtype.Type, val int64) (*IntImm, error) {
	n := &IntImm{typ: typ, val: val}
	return result(n, checkType(n, typ))
}

func (*IntImm) node() {}
func (*IntImm) expr() {}

// Type of the literal.
func (n *IntImm) Type() irtype.Type { return n.typ }

// Value of the literal.
func (n *IntImm) Value() int64 { return n.val }

// NewUIntImm returns an unsigned integer literal.
func NewUIntImm(typ irtype.Type, val uint64) (*UIntImm, error) {
	n := &UIntImm{typ: typ, val: val}
	return result(n, checkType(n, typ))
}

func (*UIntImm) node() {}
func (*UIntImm) expr() {}

// Type of the literal.
func (n *UIntImm) Type() irtype.Type { return n.typ }

// Value of the literal.
func (n *UIntImm) Value() uint64 { return n.val }

// NewFloatImm returns a floating point literal.
func NewFloatImm(typ irtype.Type, val float64) (*FloatImm, error) {
	n := &FloatImm{typ: typ, val: val}
	return result(n, checkType(n, typ))
}

func (*FloatImm) node() {}
func (*FloatImm) expr() {}

// Type of the literal.
func (n *FloatImm) Type() irtype.Type { return n.typ }

// Value of the literal.
func (n *FloatImm) Value() float64 { return n.val }

// NewStringImm returns a string literal.
func NewStringImm(typ irtype.Type, val string) (*StringImm, error) {
	n := &StringImm{typ: typ, val: val}
	return result(n, checkType(n, typ))
}

func (*StringImm) node() {}
func (*StringImm) expr() {}

// Type of the literal.
func (n *StringImm) Type() irtype.Type { return n.typ }

// Value of the literal.
func (n *StringImm) Value() string { return n.val }

// NewUnary returns a unary expression.
func NewUnary(typ irtype.Type, op UnaryOp, x Expr) (*Unary, error) {
	n := &Unary{typ: typ, op: op, x: x}
	if !op.Valid() {
		return nil, Errorf(n, "undefined unary operator")
	}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "operand", x)))
}

func (*Unary) node() {}
func (*Unary) expr() {}

// Type of the result.
func (n *Unary) Type() irtype.Type { return n.typ }

// Op returns the operator.
func (n *Unary) Op() UnaryOp { return n.op }

// X returns the operand.
func (n *Unary) X() Expr { return n.x }

// NewBinary returns a binary expression.
func NewBinary(typ irtype.Type, op BinaryOp, x, y Expr) (*Binary, error) {
	n := &Binary{typ: typ, op: op, x: x, y: y}
	if !op.Valid() {
		return nil, Errorf(n, "undefined binary operator")
	}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "operand", x, y)))
}

func (*Binary) node() {}
func (*Binary) expr() {}

// Type of the result.
func (n *Binary) Type() irtype.Type { return n.typ }

// Op returns the operator.
func (n *Binary) Op() BinaryOp { return n.op }

// X returns the left operand.
func (n *Binary) X() Expr { return n.x }

// Y returns the right operand.
func (n *Binary) Y() Expr { return n.y }

// NewCompare returns a comparison.
func NewCompare(typ irtype.Type, op CompareOp, x, y Expr) (*Compare, error) {
	n := &Compare{typ: typ, op: op, x: x, y: y}
	if !op.Valid() {
		return nil, Errorf(n, "undefined comparison operator")
	}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "operand", x, y)))
}

func (*Compare) node() {}
func (*Compare) expr() {}

// Type of the result.
func (n *Compare) Type() irtype.Type { return n.typ }

// Op returns the operator.
func (n *Compare) Op() CompareOp { return n.op }

// X returns the left operand.
func (n *Compare) X() Expr { return n.x }

// Y returns the right operand.
func (n *Compare) Y() Expr { return n.y }

// NewSelect returns a selection between two values.
func NewSelect(typ irtype.Type, cond, trueValue, falseValue Expr) (*Select, error) {
	n := &Select{typ: typ, cond: cond, trueValue: trueValue, falseValue: falseValue}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "operand", cond, trueValue, falseValue)))
}

func (*Select) node() {}
func (*Select) expr() {}

// Type of the result.
func (n *Select) Type() irtype.Type { return n.typ }

// Cond returns the condition.
func (n *Select) Cond() Expr { return n.cond }

// TrueValue returns the value selected when the condition holds.
func (n *Select) TrueValue() Expr { return n.trueValue }

// FalseValue returns the value selected when the condition does not hold.
func (n *Select) FalseValue() Expr { return n.falseValue }

// NewCall returns a call to a function.
func NewCall(typ irtype.Type, callType CallType, name string, args []Expr) (*Call, error) {
	n := &Call{typ: typ, callType: callType, name: name, args: slices.Clone(args)}
	if !callType.Valid() {
		return nil, Errorf(n, "undefined call type")
	}
	if !ValidName(name) {
		return nil, Errorf(n, "invalid function name %q", name)
	}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "argument", args...)))
}

func (*Call) node() {}
func (*Call) expr() {}

// Type of the result.
func (n *Call) Type() irtype.Type { return n.typ }

// CallType tells if the function has side effects.
func (n *Call) CallType() CallType { return n.callType }

// Name of the function.
func (n *Call) Name() string { return n.name }

// Args returns the arguments of the call.
// The slice must not be modified.
func (n *Call) Args() []Expr { return n.args }

// NewCast returns the conversion of a value to the target type.
func NewCast(target irtype.Type, x Expr) (*Cast, error) {
	n := &Cast{typ: target, x: x}
	return result(n, firstErr(checkType(n, target), checkOperands(n, "value", x)))
}

func (*Cast) node() {}
func (*Cast) expr() {}

// Type returns the target type.
func (n *Cast) Type() irtype.Type { return n.typ }

// X returns the value being converted.
func (n *Cast) X() Expr { return n.x }

// NewRamp returns a vectorized access pattern.
func NewRamp(typ irtype.Type, base Expr, stride, lanes int) (*Ramp, error) {
	n := &Ramp{typ: typ, base: base, stride: stride, lanes: lanes}
	if stride == 0 {
		return nil, Errorf(n, "stride cannot be 0")
	}
	if lanes < 1 {
		return nil, Errorf(n, "invalid number of lanes %d", lanes)
	}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "base", base)))
}

func (*Ramp) node() {}
func (*Ramp) expr() {}

// Type of the vector.
func (n *Ramp) Type() irtype.Type { return n.typ }

// Base returns the first value.
func (n *Ramp) Base() Expr { return n.base }

// Stride returns the distance between two consecutive lanes.
func (n *Ramp) Stride() int { return n.stride }

// Lanes returns the number of lanes.
func (n *Ramp) Lanes() int { return n.lanes }

// NewDec returns the declaration of a variable.
func NewDec(typ irtype.Type, v *Var, isRef bool) (*Dec, error) {
	n := &Dec{typ: typ, v: v, isRef: isRef}
	if v == nil {
		return nil, Errorf(n, "declared variable is nil")
	}
	return result(n, checkType(n, typ))
}

func (*Dec) node() {}
func (*Dec) expr() {}

// Type of the declared variable.
func (n *Dec) Type() irtype.Type { return n.typ }

// Var returns the declared variable.
func (n *Dec) Var() *Var { return n.v }

// IsRef returns true if the declaration binds a reference.
func (n *Dec) IsRef() bool { return n.isRef }

// NewVar returns a variable.
// Args may be empty for scalars or for variables only declared.
// Shape may be empty for scalars or for variables only accessed.
func NewVar(typ irtype.Type, name string, args []Expr, shape []int) (*Var, error) {
	n := &Var{typ: typ, name: name, args: slices.Clone(args), shape: slices.Clone(shape)}
	if !ValidName(name) {
		return nil, Errorf(n, "invalid variable name %q", name)
	}
	for i, dim := range shape {
		if dim < 1 {
			return nil, Errorf(n, "invalid dimension %d at axis %d", dim, i)
		}
	}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "argument", args...)))
}

func (*Var) node() {}
func (*Var) expr() {}

// Type of the elements of the variable.
func (n *Var) Type() irtype.Type { return n.typ }

// Name of the variable.
func (n *Var) Name() string { return n.name }

// Args returns the index expressions used to access the variable.
// The slice must not be modified.
func (n *Var) Args() []Expr { return n.args }

// Shape returns the static dimensions of the variable.
// The slice must not be modified.
func (n *Var) Shape() []int { return n.shape }

// NewDom returns the iteration range [begin, begin+extent).
func NewDom(typ irtype.Type, begin, extent Expr) (*Dom, error) {
	n := &Dom{typ: typ, begin: begin, extent: extent}
	return result(n, firstErr(checkType(n, typ), checkOperands(n, "bound", begin, extent)))
}

func (*Dom) node() {}
func (*Dom) expr() {}

// Type of the bounds.
func (n *Dom) Type() irtype.Type { return n.typ }

// Begin returns the first value of the range.
func (n *Dom) Begin() Expr { return n.begin }

// Extent returns the number of values in the range.
func (n *Dom) Extent() Expr { return n.extent }

// NewIndex returns a loop index.
func NewIndex(typ irtype.Type, name string, dom *Dom, role IndexType) (*Index, error) {
	n := &Index{typ: typ, name: name, dom: dom, role: role}
	if !ValidName(name) {
		return nil, Errorf(n, "invalid index name %q", name)
	}
	if dom == nil {
		return nil, Errorf(n, "domain is nil")
	}
	if !role.Valid() {
		return nil, Errorf(n, "undefined index role")
	}
	if err := checkType(n, typ); err != nil {
		return nil, err
	}
	// Loop variables are always declared as int in loop headers.
	if !typ.IsScalar() || !irkind.IsIntegerKind(typ.Kind()) {
		return nil, Errorf(n, "index type %s is not an integer", typ)
	}
	return n, nil
}

func (*Index) node() {}
func (*Index) expr() {}

// Type of the index.
func (n *Index) Type() irtype.Type { return n.typ }

// Name of the index.
func (n *Index) Name() string { return n.name }

// Dom returns the range over which the index iterates.
func (n *Index) Dom() *Dom { return n.dom }

// Role returns the role of the index in the access pattern.
func (n *Index) Role() IndexType { return n.role }

// NewEpsilon returns the no-value marker.
func NewEpsilon(typ irtype.Type) (*Epsilon, error) {
	n := &Epsilon{typ: typ}
	return result(n, checkType(n, typ))
}

func (*Epsilon) node() {}
func (*Epsilon) expr() {}

// Type of the marker.
func (n *Epsilon) Type() irtype.Type { return n.typ }
