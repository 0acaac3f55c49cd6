// Package holography reconstructs electron waves from off-axis holograms.
//
// An off-axis hologram records the interference of the object wave with a
// tilted reference wave. Its Fourier transform holds a centre band and two
// sidebands; each sideband is the object wave modulated by the carrier
// frequency of the interference fringes. Reconstruction cuts one sideband
// out with an aperture, moves it to zero frequency and transforms back:
//
//	holo, err := holography.NewHologramImage(intensity, rows, cols)
//	wave, err := holo.ReconstructPhase(holography.WithSideband(holography.SidebandLower))
//
// The sideband position and aperture radius are estimated from the hologram
// unless given explicitly. A reference hologram recorded without specimen
// removes distortions shared by both recordings:
//
//	wave, err := holo.ReconstructPhase(holography.WithReference(vacuum))
//
// Holograms that are not periodic across the field of view can be tapered
// with [WithApodization] to suppress border streaks in the spectrum.
//
// Frequencies are expressed in cycles per image along each axis (signed FFT
// bin indices). 2-D transforms are built from algo-fft plans applied along
// rows and columns; image sizes must be lengths the FFT planner supports.
package holography
