// Package unwrap removes 2*pi discontinuities from 2-D phase maps.
//
// Two algorithms are provided:
//
//   - [MethodQualityGuided] (default): pixels are joined along edges sorted by
//     reliability, where reliability is derived from the second differences
//     of the wrapped phase. Noisy or aliased regions are unwrapped last, so
//     errors stay local.
//   - [MethodPathFollowing]: the first column is unwrapped top to bottom and
//     every row is then unwrapped left to right starting from it. Fast and
//     exact for clean data, but a single bad pixel corrupts the rest of its row.
//
// Both methods anchor the result so the first pixel keeps its wrapped value.
// A field whose neighbouring pixels differ by less than pi is recovered
// exactly from its wrapped version.
//
//	out, err := unwrap.Unwrap2D(phase, rows, cols)
//	out, err := unwrap.Unwrap2D(phase, rows, cols, unwrap.WithMethod(unwrap.MethodPathFollowing))
package unwrap
