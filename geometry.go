package main

// FitBounds shrinks (origH, origW) until both dimensions fit within
// (maxH, maxW), scaling the other dimension proportionally at each step.
// Aspect ratio is preserved to within integer rounding. Images that already
// fit are returned unchanged; there is no upscaling. Every iteration strictly
// shrinks one dimension, so the loop terminates.
func FitBounds(origH, origW, maxH, maxW int) (int, int) {
	h, w := origH, origW
	for h > 0 && w > 0 && (h > maxH || w > maxW) {
		if h > maxH {
			w = w * maxH / h
			h = maxH
		}
		if w > maxW {
			h = h * maxW / w
			w = maxW
		}
	}
	return h, w
}
