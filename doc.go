// Package fmatrix solves systems of linear equations written as plain text
// and shows every row operation it used to get there.
//
// What is fmatrix?
//
//	A small toolkit that turns lines such as "x + 2y = -4" into a solved
//	system, in three stages:
//		• equation/ — tokenizes one line into variables, coefficients and a constant
//		• matrix/   — assembles equations into a zero-padded row-major System
//		• gauss/    — partial-pivot Gaussian elimination with a recorded Trace
//
// Commands:
//
//	cmd/fmatrix      — interactive or HCL-file driven solver printing the trace
//	cmd/fmatrix-mcp  — the same pipeline exposed as MCP tools over stdio
//
// Quick start:
//
//	eqs := []*equation.Normalized{
//		equation.MustNormalize("x + 2y = -4"),
//		equation.MustNormalize("8x + y = 9"),
//	}
//	sys, _ := matrix.Build(eqs)
//	res, _ := gauss.Solve(sys)
//	fmt.Println(res.Solution()) // map[x:1.4666… y:-2.7333…]
//
// Errors are returned, never panicked: parse failures as *equation.ParseError,
// shape problems as matrix sentinels, and gauss.ErrSingular when no unique
// solution exists.
package fmatrix
