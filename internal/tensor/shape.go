package tensor

import "fmt"

// Shape represents the dimensions of a tensor as [rows, cols].
//
// Vectors are column matrices ([n, 1]) and scalars are [1, 1].
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is two-dimensional with positive sizes.
func (s Shape) Validate() error {
	if len(s) != 2 {
		return fmt.Errorf("shape must be 2-D, got %dD", len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// IsScalar reports whether the shape holds exactly one element.
func (s Shape) IsScalar() bool {
	return s.NumElements() == 1
}

// BroadcastShapes resolves the result shape of an element-wise binary op.
//
// Only two cases are supported: identical shapes, or one side being a
// scalar that is broadcast to the other side. The flag reports whether
// broadcasting happened.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	switch {
	case a.Equal(b):
		return a.Clone(), false, nil
	case b.IsScalar():
		return a.Clone(), true, nil
	case a.IsScalar():
		return b.Clone(), true, nil
	default:
		return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v", a, b)
	}
}
