// SPDX-License-Identifier: MIT

package matrix

// Numeric is the element contract shared by every matrix in this package.
//
// A type satisfies Numeric when its underlying type is a built-in integer,
// floating-point or complex type. Those are exactly the Go types that support
// + - * / (and their compound forms), ==, copy-by-value, fmt's %v rendering
// and a meaningful zero value. Named types such as `type Celsius float64`
// participate without any change to the matrix code.
//
// The zero value of T seeds every accumulator (matrix product) and fills
// freshly allocated storage.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}
