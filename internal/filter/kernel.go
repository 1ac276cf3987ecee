package filter

import (
	"errors"
	"fmt"
)

// Kernel errors.
var (
	// ErrKernelShape is returned when weights are not a (2r+1)x(2r+1) square.
	ErrKernelShape = errors.New("filter: kernel weights are not square with odd side")

	// ErrZeroDivisor is returned for a kernel whose divisor is zero.
	ErrZeroDivisor = errors.New("filter: kernel divisor is zero")
)

// Kernel is a square integer convolution mask with a normalization divisor.
//
// The side length is 2*Radius()+1. A Kernel is immutable once built: its
// fields are unexported and Weights returns a copy.
type Kernel struct {
	radius  int
	divisor int
	weights []int // row-major, side*side
}

// Predefined kernels.
var (
	// Gaussian5x5 is the 5x5 smoothing mask. Its weights sum to 159, so a
	// flat neighborhood is reproduced exactly.
	Gaussian5x5 = mustKernel(159, [][]int{
		{2, 4, 5, 4, 2},
		{4, 9, 12, 9, 4},
		{5, 12, 15, 12, 5},
		{4, 9, 12, 9, 4},
		{2, 4, 5, 4, 2},
	})

	// SobelX responds to horizontal intensity change.
	SobelX = mustKernel(1, [][]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})

	// SobelY responds to vertical intensity change.
	SobelY = mustKernel(1, [][]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
)

// NewKernel builds a kernel from rows of weights. The matrix must be square
// with an odd side, and divisor must be non-zero.
func NewKernel(divisor int, rows [][]int) (Kernel, error) {
	side := len(rows)
	if side == 0 || side%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: %d rows", ErrKernelShape, side)
	}
	if divisor == 0 {
		return Kernel{}, ErrZeroDivisor
	}

	weights := make([]int, 0, side*side)
	for i, row := range rows {
		if len(row) != side {
			return Kernel{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrKernelShape, i, len(row), side)
		}
		weights = append(weights, row...)
	}

	return Kernel{
		radius:  side / 2,
		divisor: divisor,
		weights: weights,
	}, nil
}

func mustKernel(divisor int, rows [][]int) Kernel {
	k, err := NewKernel(divisor, rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Radius returns the number of samples the kernel reaches on each side of
// its center.
func (k Kernel) Radius() int {
	return k.radius
}

// Size returns the side length, 2*Radius()+1.
func (k Kernel) Size() int {
	return 2*k.radius + 1
}

// Divisor returns the normalization divisor.
func (k Kernel) Divisor() int {
	return k.divisor
}

// Weight returns the weight applied to the sample at offset (dx, dy) from
// the center. Offsets beyond the radius have weight 0.
func (k Kernel) Weight(dx, dy int) int {
	r := k.radius
	if dx < -r || dx > r || dy < -r || dy > r {
		return 0
	}
	return k.weights[(dy+r)*k.Size()+dx+r]
}

// Weights returns a copy of the mask as rows.
func (k Kernel) Weights() [][]int {
	side := k.Size()
	rows := make([][]int, side)
	for i := range rows {
		rows[i] = append([]int(nil), k.weights[i*side:(i+1)*side]...)
	}
	return rows
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() int {
	sum := 0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}
