// SPDX-License-Identifier: MIT

// Package matrices: the Batch container.
//
// Batch makes "one matrix vs many matrices" a type-level distinction:
// single-matrix kernels take *mat.Dense, batched kernels take Batch. There is
// no runtime rank inspection anywhere in the package, so a caller can never
// hand a batch to a single-matrix kernel (or vice versa) by accident.
//
// Binary batched kernels broadcast a length-1 batch against a longer one,
// mirroring NumPy-style leading-axis broadcasting in a checked form: any other
// length conflict is ErrBatchLength, never silent recycling.

package matrices

import "gonum.org/v1/gonum/mat"

// Batch is an ordered collection of m×n matrices sharing one manifold.
// Elements are never mutated by kernels; results are freshly allocated and
// preserve input order. A nil element is rejected by validators.
type Batch []*mat.Dense

// NewBatch builds a Batch from the given matrices, preserving order.
// The slice header is fresh but the elements are shared (kernels never
// mutate them). Complexity: O(len(ds)).
func NewBatch(ds ...*mat.Dense) Batch {
	out := make(Batch, len(ds))
	copy(out, ds)
	return out
}

// Len returns the number of matrices in the batch. Complexity: O(1).
func (b Batch) Len() int { return len(b) }

// At returns the i-th matrix of the batch. Bounds are the caller's
// responsibility, as with any slice access. Complexity: O(1).
func (b Batch) At(i int) *mat.Dense { return b[i] }

// Clone returns a deep copy of the batch: both the slice and every element
// are freshly allocated. Complexity: O(n·m·len(b)).
func (b Batch) Clone() Batch {
	out := make(Batch, len(b))
	var i int
	for i = range b {
		if b[i] == nil {
			continue // preserved as nil; validators reject it downstream
		}
		d := new(mat.Dense)
		d.CloneFrom(b[i])
		out[i] = d
	}
	return out
}

// broadcastLen resolves the common length of two batches under the length-1
// broadcast rule: equal lengths pass through, a length-1 side stretches to the
// other, anything else is ErrBatchLength. Complexity: O(1).
func broadcastLen(la, lb int) (int, error) {
	switch {
	case la == lb:
		return la, nil
	case la == 1:
		return lb, nil
	case lb == 1:
		return la, nil
	default:
		return 0, ErrBatchLength
	}
}

// pick returns the element of b used for position i under broadcasting:
// a length-1 batch always yields its only element. Complexity: O(1).
func pick(b Batch, i int) *mat.Dense {
	if len(b) == 1 {
		return b[0]
	}
	return b[i]
}
