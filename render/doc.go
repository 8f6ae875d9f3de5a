// Package render draws grid snapshots: as an image.Image, as a composed RGBA
// picture with a caption band (PNG export), or as plain ASCII text.
//
// Image resolves each pixel to its cell lazily. Compose rasterizes it and
// stacks a caption drawn with the 7×13 bitmap face underneath. Text uses
// one character per cell:
//
//	S start   E end   # wall   * path   o frontier   . visited
package render
