// Package pattern finds historical close-price windows shaped like the
// current one and aggregates their forward-return outcomes.
package pattern

// Normalize rescales a price sequence into [0,1] amplitude. Sequences
// shorter than 2 are returned unchanged (copied); a flat sequence maps to
// all zeros so the caller never divides by zero.
func Normalize(seq []float64) []float64 {
	out := make([]float64, len(seq))
	copy(out, seq)
	if len(seq) < 2 {
		return out
	}

	min, max := seq[0], seq[0]
	for _, v := range seq[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		for i := range out {
			out[i] = 0
		}
		return out
	}

	span := max - min
	for i, v := range seq {
		out[i] = (v - min) / span
	}
	return out
}

// Resample maps two sequences of unequal length onto the shorter length by
// linear interpolation over normalized position in [0,1]. Equal-length input
// is returned as-is.
func Resample(a, b []float64) ([]float64, []float64) {
	if len(a) == len(b) {
		return a, b
	}
	target := len(a)
	if len(b) < target {
		target = len(b)
	}
	return interpolate(a, target), interpolate(b, target)
}

// interpolate samples seq at `length` evenly spaced normalized positions.
func interpolate(seq []float64, length int) []float64 {
	if len(seq) == length {
		out := make([]float64, length)
		copy(out, seq)
		return out
	}
	out := make([]float64, length)
	if length == 0 || len(seq) == 0 {
		return out
	}
	if len(seq) == 1 || length == 1 {
		for i := range out {
			out[i] = seq[0]
		}
		return out
	}

	step := 1.0 / float64(length-1)
	srcStep := 1.0 / float64(len(seq)-1)
	for i := 0; i < length; i++ {
		pos := float64(i) * step / srcStep
		lo := int(pos)
		if lo >= len(seq)-1 {
			out[i] = seq[len(seq)-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = seq[lo]*(1-frac) + seq[lo+1]*frac
	}
	return out
}
