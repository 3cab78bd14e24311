// Package logo565 converts vector team artwork into tiny RGB565 rasters
// for HUB75 LED matrix panels driven at 4 bits per color channel.
//
// The panel can only reproduce colors reachable through its
// RGB565 -> CIE 1931 duty-cycle chain, and naive per-channel rounding
// picks visibly wrong colors at 20x20 (dull greens, pink instead of
// red, muddy whites). The package enumerates every color the hardware
// can actually emit, matches pixels against that palette in CIELAB
// space, and applies per-team corrections for hues the chain renders
// poorly. Fetching, SVG rasterization and file layout live in the cmd
// binaries; the library itself is an offline, one-image-per-call core.
package logo565
