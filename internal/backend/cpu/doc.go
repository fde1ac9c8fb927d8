// Package cpu implements the CPU backend on top of gonum's dense kernels.
//
// The backend satisfies tensor.Backend and never modifies its inputs: every
// operation returns a newly allocated tensor. Element-wise operations use the
// vectorized routines in gonum.org/v1/gonum/floats, matrix multiplication uses
// mat.Dense.Mul.
package cpu
