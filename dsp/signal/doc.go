// Package signal provides image signals for electron holography.
//
// [WaveImage] owns a complex field (the reconstructed electron wave) and
// exposes its real, imaginary, phase and amplitude views. Setting one view
// rebuilds the field while keeping its complementary view: setting the phase
// keeps the amplitude, setting the real part keeps the imaginary part and so
// on. Reference normalisation, reference subtraction and phase-ramp
// correction mutate the field in place.
//
// [Image] is a real-valued image, returned for example by
// [WaveImage.UnwrappedPhase].
//
// Shapes are row-major; the last two axes are the image axes and leading
// axes index a stack of images. Per-image operations (unwrapping, phase
// ramps) are applied to every image of a stack.
package signal
