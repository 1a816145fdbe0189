package ramp

import "math"

// temperatureResponse compresses small temperature magnitudes so the bias
// stays gentle near neutral and approaches full strength near |t| = 1.
func temperatureResponse(t float64) float64 {
	return math.Pow(math.Abs(t), 1.6)
}

// positionWeight converts a relative step position into a bias weight.
// The 1.1 exponent keeps midtones close to the base hue while letting
// the extremes take the full excursion.
func positionWeight(p float64) float64 {
	return math.Pow(math.Abs(p), 1.1)
}

// anchorFor returns the anchor hue a step at relative position p is
// biased toward. Highlights chase the light colour and shadows its
// complement, so the pair swaps with the temperature sign.
func (pl *plan) anchorFor(p float64) float64 {
	if p >= 0 {
		return pl.highlightAnchor
	}
	return pl.shadowAnchor
}

// hueFor computes the biased hue for one step. targetChroma is the step's
// chroma from the chroma curve; the hue shift is damped as chroma fades
// because hue carries no visual information on a near-grey rung.
func (pl *plan) hueFor(p, targetChroma float64) float64 {
	if pl.temperature == 0 {
		return pl.base.H
	}

	if pl.nearNeutral {
		// An achromatic base has no hue to bias; the light itself
		// provides the hue ("light reveals itself on grey").
		if p == 0 {
			return pl.base.H
		}
		return pl.anchorFor(p)
	}

	if targetChroma < hueFreezeChroma {
		return pl.base.H
	}

	weight := positionWeight(p) * temperatureResponse(pl.temperature) * pl.cfg.MaxHueShift / 90
	candidate := blendHue(pl.base.H, pl.anchorFor(p), weight)

	if targetChroma < hueDampChroma {
		damp := (targetChroma - hueFreezeChroma) / (hueDampChroma - hueFreezeChroma)
		return blendHue(pl.base.H, candidate, damp*damp)
	}
	return candidate
}

// converge pulls top highlights toward the light anchor by blending in
// Cartesian OKLab rather than hue-angle space. Hue-angle blending is
// unstable at low chroma (small denominators); opponent coordinates
// degrade gracefully, fading the pull to nothing as chroma reaches zero.
func (pl *plan) converge(p float64, c Color) Color {
	if pl.temperature == 0 || p <= convergenceStart {
		return c
	}

	rampIn := (p - convergenceStart) / (1 - convergenceStart)
	presence := math.Min(1, c.C/hueDampChroma)
	w := rampIn * temperatureResponse(pl.temperature) * presence * pl.cfg.Convergence
	if w <= 0 {
		return c
	}

	_, a, b := c.lab()
	anchorRad := pl.highlightAnchor * (math.Pi / 180.0)
	ta := c.C * math.Cos(anchorRad)
	tb := c.C * math.Sin(anchorRad)

	blended := labToLCH(c.L, a+(ta-a)*w, b+(tb-b)*w)
	return Color{L: c.L, C: blended.C, H: blended.H}
}
