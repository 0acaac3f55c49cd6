// Package window generates tapering windows and applies them to images.
//
// Holograms are rarely periodic across the field of view, so their FFT picks
// up streaks from the image borders. Apodizing the hologram with a window
// that falls to zero at the edges suppresses those streaks before sideband
// extraction:
//
//	err := window.Apodize2D(window.TypeTukey, data, rows, cols, window.WithAlpha(0.25))
package window
