package ramp

import "math"

// Lightness bounds for ramp endpoints. Pure black and white are excluded
// so the extreme rungs keep enough headroom to carry a tint.
const (
	minLightness = 0.08
	maxLightness = 0.98

	// minLightnessGap is the smallest allowed lightness increase between
	// adjacent rungs, before quantization headroom is added.
	minLightnessGap = 0.002

	// repairGapFactor widens the repair gap past one 8-bit quantum so
	// per-channel rounding on chromatic rungs cannot re-merge two
	// adjacent output colours.
	repairGapFactor = 1.25
)

// lightnessProfile builds the monotonic lightness ladder for the given
// step count, anchored so the midpoint rung equals the base lightness.
//
// The profile starts as an even spread across [minLightness, maxLightness],
// is rigidly offset onto the base lightness, and any rung the offset
// pushes out of bounds is compressed back toward the base proportionally
// to its distance from the midpoint rather than clipped, so the extreme
// rung lands on the bound instead of several rungs collapsing onto it.
func lightnessProfile(baseL float64, steps int) []float64 {
	base := clamp(baseL, minLightness, maxLightness)
	mid := steps / 2

	out := make([]float64, steps)
	span := maxLightness - minLightness
	for i := range out {
		out[i] = minLightness + span*float64(i)/float64(steps-1)
	}

	offset := base - out[mid]
	for i := range out {
		v := out[i] + offset
		if v < minLightness || v > maxLightness {
			bound := minLightness
			if v > maxLightness {
				bound = maxLightness
			}
			d := float64(abs(i-mid)) / float64(mid)
			v = base + (bound-base)*d
		}
		out[i] = v
	}

	// Repair any order-breaking rungs left by compression or
	// floating-point noise. A base sitting on a bound collapses its
	// whole pushed side onto that bound, so the gap has to be wide
	// enough to survive 8-bit quantization: near black one sRGB grey
	// step spans over 0.01 of lightness, far more than any fixed gap.
	// Later gamut clamping never touches lightness, so monotonicity
	// established here is final.
	for i := 1; i < steps; i++ {
		gap := repairGapFactor * lightnessQuantum(out[i-1])
		if gap < minLightnessGap {
			gap = minLightnessGap
		}
		if out[i] < out[i-1]+gap {
			out[i] = out[i-1] + gap
		}
	}
	return out
}

// lightnessQuantum returns the lightness increase produced by one 8-bit
// grey step at lightness l: the smallest spacing that still separates
// two rungs after conversion to #RRGGBB. For greys the OKLab matrix rows
// sum to 1, so lightness maps to a grey channel as v = srgb(l^3).
func lightnessQuantum(l float64) float64 {
	if l <= 0 || l >= 1 {
		return minLightnessGap
	}
	v := linearToSRGB(l * l * l)
	next := v + 1.0/255
	if next > 1 {
		next = 1
	}
	q := math.Cbrt(srgbToLinear(next)) - l
	if q <= 0 {
		return minLightnessGap
	}
	return q
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
