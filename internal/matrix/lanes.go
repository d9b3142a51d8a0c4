package matrix

import "golang.org/x/sys/cpu"

// maxLanes bounds the per-lane accumulator arrays. 512-bit vectors are
// the widest target and hold eight float64 values.
const maxLanes = 8

// lanes is the number of float64 elements processed per chunk by the
// vectorized kernels, detected once at startup.
var lanes = detectLanes()

// detectLanes picks the widest float64 lane count the host supports:
// 512-bit vectors hold 8 float64, 256-bit hold 4, and the 128-bit
// baseline (SSE2, NEON) holds 2.
func detectLanes() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 8
	case cpu.X86.HasAVX2:
		return 4
	default:
		return 2
	}
}

// Lanes reports the hardware vector width used by the chunked kernels,
// in float64 elements per chunk.
func Lanes() int {
	return lanes
}

// dot computes the inner product of a and b. Callers guarantee equal
// lengths. The main loop walks full lane-width chunks keeping one
// accumulator per lane; the scalar tail folds the remainder into the
// reduced sum. Up to floating-point reassociation the result equals a
// naive left-to-right dot product, which the package tests verify.
func dot(a, b []float64) float64 {
	w := lanes
	var acc [maxLanes]float64
	i := 0
	for ; i+w <= len(a); i += w {
		for l := 0; l < w; l++ {
			acc[l] += a[i+l] * b[i+l]
		}
	}
	var sum float64
	for l := 0; l < w; l++ {
		sum += acc[l]
	}
	// Scalar tail for the remainder.
	for ; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// addChunked writes a+b into dst. Callers guarantee equal lengths.
func addChunked(dst, a, b []float64) {
	w := lanes
	i := 0
	for ; i+w <= len(dst); i += w {
		for l := 0; l < w; l++ {
			dst[i+l] = a[i+l] + b[i+l]
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}

// subChunked writes a-b into dst. Callers guarantee equal lengths.
func subChunked(dst, a, b []float64) {
	w := lanes
	i := 0
	for ; i+w <= len(dst); i += w {
		for l := 0; l < w; l++ {
			dst[i+l] = a[i+l] - b[i+l]
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] - b[i]
	}
}

// mulChunked writes a*b (elementwise) into dst. Callers guarantee equal
// lengths.
func mulChunked(dst, a, b []float64) {
	w := lanes
	i := 0
	for ; i+w <= len(dst); i += w {
		for l := 0; l < w; l++ {
			dst[i+l] = a[i+l] * b[i+l]
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] * b[i]
	}
}

// scaleChunked writes s*a into dst. Callers guarantee equal lengths.
func scaleChunked(dst, a []float64, s float64) {
	w := lanes
	i := 0
	for ; i+w <= len(dst); i += w {
		for l := 0; l < w; l++ {
			dst[i+l] = s * a[i+l]
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = s * a[i]
	}
}
