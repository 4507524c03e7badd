// SPDX-License-Identifier: MIT

package gauss

import (
	"strconv"
	"strings"

	"github.com/matthewg-rev/fmatrix-solver/matrix"
)

// Transformation is one recorded elementary row operation.
// The concrete types are Scale, Swap, Combine and Compound.
type Transformation interface {
	// String renders the operation using L<position> row labels.
	String() string

	isTransformation()
}

// Trace is the ordered list of transformations recorded by Solve.
type Trace []Transformation

// Scale records that Row was multiplied by Factor.
type Scale struct {
	Row    matrix.Row
	Factor float64
}

// Swap records that rows A and B exchanged slots.
type Swap struct {
	A, B matrix.Row
}

// Combine records that Source was added into Target.
type Combine struct {
	Target, Source matrix.Row
}

// Compound groups the steps that eliminate one entry of Result.
type Compound struct {
	Steps  []Transformation
	Result matrix.Row
}

// Compile-time assertions for the sum type.
var (
	_ Transformation = Scale{}
	_ Transformation = Swap{}
	_ Transformation = Combine{}
	_ Transformation = Compound{}
)

func (Scale) isTransformation()    {}
func (Swap) isTransformation()     {}
func (Combine) isTransformation()  {}
func (Compound) isTransformation() {}

// String renders "L<r> * <factor> -> L<r>".
func (s Scale) String() string {
	return label(s.Row) + " * " + strconv.FormatFloat(s.Factor, 'f', -1, 64) + " -> " + label(s.Row)
}

// String renders "L<a> <-> L<b>".
func (s Swap) String() string {
	return label(s.A) + " <-> " + label(s.B)
}

// String renders "L<target> + L<source> -> L<target>".
func (c Combine) String() string {
	return label(c.Target) + " + " + label(c.Source) + " -> " + label(c.Target)
}

// String renders every step on its own line, then "L<r> -> L<r>".
func (c Compound) String() string {
	var sb strings.Builder
	for _, step := range c.Steps {
		sb.WriteString(step.String())
		sb.WriteByte('\n')
	}
	sb.WriteString(label(c.Result) + " -> " + label(c.Result))

	return sb.String()
}

func label(r matrix.Row) string { return "L" + strconv.Itoa(r.Position) }
