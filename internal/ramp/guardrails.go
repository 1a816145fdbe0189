package ramp

// guardedSteps is how many highlight rungs the family guardrails cover.
const guardedSteps = 3

// resolveGuardrail classifies the base hue against the family band table.
// Guardrails only exist for cool light (negative temperature), which is
// what pushes yellow highlights green-ward and red highlights across the
// green boundary; they never apply to a near-neutral base.
func resolveGuardrail(baseHue, temperature float64, cfg ModeConfig, nearNeutral bool) *GuardrailBand {
	if temperature >= 0 || nearNeutral {
		return nil
	}
	for _, band := range GuardrailBands() {
		if !band.contains(baseHue) {
			continue
		}
		resolved := band
		if resolved.Ceiling == 0 {
			resolved.Ceiling = cfg.YellowCeiling
			resolved.DriftMin = cfg.YellowCeiling
		}
		return &resolved
	}
	return nil
}

func (b GuardrailBand) contains(hue float64) bool {
	if hue >= b.BaseMin && hue <= b.BaseMax {
		return true
	}
	return b.wrap && hue >= b.BaseMin2 && hue <= b.BaseMax2
}

// applyGuardrails clamps hue drift that would carry a top-highlight rung
// out of its colour family. Only the top guarded rungs are touched, and
// only when the rung carries visible chroma; hue on a near-grey rung is
// meaningless and left alone.
func (pl *plan) applyGuardrails(i int, c Color) Color {
	if pl.guard == nil || i < pl.steps-guardedSteps {
		return c
	}
	if c.C <= hueFreezeChroma {
		return c
	}
	if c.H >= pl.guard.DriftMin && c.H <= pl.guard.DriftMax {
		return Color{L: c.L, C: c.C, H: pl.guard.Ceiling}
	}
	return c
}
