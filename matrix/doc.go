// Package matrix provides the dense numeric storage used by the optimizer.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix backed by one flat slice, used for the
//     per-unit and fixed route cost tables of a transportation instance.
//   - Validators: shape, finiteness and sign checks that return plain
//     sentinels so callers can wrap them with their own context.
//
// Dense matrices are cheap to read in hot loops through RawRow, which exposes a
// read-only view of one row without copying.
package matrix
