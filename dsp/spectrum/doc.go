// Package spectrum provides elementwise helpers for complex-valued fields.
//
// It converts between the Cartesian (real/imaginary) and polar
// (amplitude/phase) views of complex data and unwraps 1-D phase profiles.
// Amplitude extraction uses the SIMD kernels of algo-vecmath when available.
package spectrum
