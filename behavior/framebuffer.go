package behavior

import "hash/fnv"

// RGB is a single framebuffer pixel.
type RGB struct {
	R, G, B uint8
}

// Scale multiplies each channel by a brightness factor clamped to [0, 1].
func (c RGB) Scale(brightness float64) RGB {
	if brightness < 0 {
		brightness = 0
	} else if brightness > 1 {
		brightness = 1
	}
	return RGB{
		R: uint8(float64(c.R) * brightness),
		G: uint8(float64(c.G) * brightness),
		B: uint8(float64(c.B) * brightness),
	}
}

// Framebuffer is a fixed-length strip of RGB pixels that behaviors render
// into. Writes outside the strip are dropped, so Render never fails.
type Framebuffer struct {
	pixels []RGB
}

// NewFramebuffer creates a framebuffer with the given number of pixels.
// Lengths below 1 are treated as 1.
func NewFramebuffer(pixels int) *Framebuffer {
	if pixels < 1 {
		pixels = 1
	}
	return &Framebuffer{pixels: make([]RGB, pixels)}
}

// Len returns the number of pixels in the strip.
func (fb *Framebuffer) Len() int {
	return len(fb.pixels)
}

// At returns the pixel at index i, or the zero pixel if i is out of range.
func (fb *Framebuffer) At(i int) RGB {
	if i < 0 || i >= len(fb.pixels) {
		return RGB{}
	}
	return fb.pixels[i]
}

// Set writes the pixel at index i. Out-of-range writes are dropped.
func (fb *Framebuffer) Set(i int, c RGB) {
	if i < 0 || i >= len(fb.pixels) {
		return
	}
	fb.pixels[i] = c
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c RGB) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// Clear sets every pixel to black.
func (fb *Framebuffer) Clear() {
	fb.Fill(RGB{})
}

// Snapshot returns a copy of the current pixel contents.
func (fb *Framebuffer) Snapshot() []RGB {
	out := make([]RGB, len(fb.pixels))
	copy(out, fb.pixels)
	return out
}

// Hash returns an FNV-1a hash of the pixel contents. Two framebuffers with
// identical contents always hash equal, which is what replay verification
// compares.
func (fb *Framebuffer) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, len(fb.pixels)*3)
	for _, px := range fb.pixels {
		buf = append(buf, px.R, px.G, px.B)
	}
	h.Write(buf)
	return h.Sum64()
}
