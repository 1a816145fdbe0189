package ramp

import "math"

// chromaFor computes the chroma for step i at relative position p.
//
// Standard bases follow a cosine curve peaking at the midpoint, floored
// at a retention fraction so the extremes never fully desaturate, with an
// extra power falloff on the highlight half to keep light rungs from
// reading oversaturated. Near-neutral bases get a synthesized tint that
// rises from zero at the midpoint to a capped maximum at the extremes.
//
// Whenever temperature is non-neutral, both endpoint rungs are floored to
// a chroma proportional to the temperature magnitude. Tinted endpoints
// under tinted light are a behavioural contract, not a styling default.
func (pl *plan) chromaFor(i int, p float64) float64 {
	var c float64
	if pl.nearNeutral {
		c = pl.neutralTint(p)
	} else {
		c = pl.standardChroma(p)
	}

	if pl.temperature != 0 && (i == 0 || i == pl.steps-1) {
		floor := pl.cfg.EndpointChromaFloor * math.Abs(pl.temperature)
		if c < floor {
			c = floor
		}
	}
	return c
}

func (pl *plan) standardChroma(p float64) float64 {
	shape := math.Pow(math.Cos(math.Abs(p)*math.Pi/2), pl.cfg.ChromaExponent)
	if p > 0 {
		shape *= 1 - highlightChromaFalloff*math.Pow(p, highlightFalloffExp)
	}
	if shape < pl.cfg.ChromaRetention {
		shape = pl.cfg.ChromaRetention
	}
	return pl.base.C * shape
}

func (pl *plan) neutralTint(p float64) float64 {
	peak := math.Min(pl.cfg.NeutralTintStrength*math.Abs(pl.temperature), pl.cfg.NeutralTintMax)
	return peak * math.Pow(math.Abs(p), pl.cfg.NeutralTintExponent)
}
