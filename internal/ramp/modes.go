package ramp

import "fmt"

// Mode selects one of the two built-in tuning profiles.
type Mode string

const (
	// ModeConservative keeps hue drift subtle; suited to UI surfaces.
	ModeConservative Mode = "conservative"

	// ModePainterly pushes larger hue and chroma excursions for
	// illustration-style ladders.
	ModePainterly Mode = "painterly"
)

// ModeConfig holds the per-mode tunables. Configs are immutable values
// passed explicitly into the ramp computation; nothing in the engine
// mutates or caches them.
type ModeConfig struct {
	// MaxHueShift is the largest hue excursion in degrees an extreme
	// step may take toward its anchor at full temperature.
	MaxHueShift float64 `toml:"max-hue-shift"`

	// ChromaRetention is the minimum fraction of base chroma retained
	// at the ramp extremes.
	ChromaRetention float64 `toml:"chroma-retention"`

	// ChromaExponent shapes the midtone chroma curve; flatter (smaller)
	// exponents hold saturation longer toward the extremes.
	ChromaExponent float64 `toml:"chroma-exponent"`

	// Convergence scales how strongly top highlights are pulled toward
	// the light anchor in Cartesian OKLab space.
	Convergence float64 `toml:"convergence"`

	// NeutralTintStrength scales the synthesized tint for near-neutral
	// bases, per unit of temperature magnitude.
	NeutralTintStrength float64 `toml:"neutral-tint-strength"`

	// NeutralTintMax caps the synthesized near-neutral tint chroma.
	NeutralTintMax float64 `toml:"neutral-tint-max"`

	// NeutralTintExponent controls how concentrated the near-neutral
	// tint is toward the endpoints.
	NeutralTintExponent float64 `toml:"neutral-tint-exponent"`

	// EndpointChromaFloor is the minimum endpoint chroma per unit of
	// temperature magnitude whenever temperature is non-neutral.
	EndpointChromaFloor float64 `toml:"endpoint-chroma-floor"`

	// YellowCeiling is the guardrail hue ceiling for yellow-family
	// bases under cool light.
	YellowCeiling float64 `toml:"yellow-ceiling"`
}

// Built-in mode tables. These values are empirically tuned; changing any
// of them is a behavioural change that invalidates the pinned ladder
// expectations in the tests.
var modeConfigs = map[Mode]ModeConfig{
	ModeConservative: {
		MaxHueShift:         16,
		ChromaRetention:     0.18,
		ChromaExponent:      1.2,
		Convergence:         0.35,
		NeutralTintStrength: 0.025,
		NeutralTintMax:      0.030,
		NeutralTintExponent: 1.4,
		EndpointChromaFloor: 0.015,
		YellowCeiling:       110,
	},
	ModePainterly: {
		MaxHueShift:         34,
		ChromaRetention:     0.28,
		ChromaExponent:      0.8,
		Convergence:         0.60,
		NeutralTintStrength: 0.040,
		NeutralTintMax:      0.035,
		NeutralTintExponent: 1.1,
		EndpointChromaFloor: 0.020,
		YellowCeiling:       115,
	},
}

// ConfigFor returns the built-in config for a mode, or ErrInvalidArgument
// for an unknown mode literal.
func ConfigFor(mode Mode) (ModeConfig, error) {
	cfg, ok := modeConfigs[mode]
	if !ok {
		return ModeConfig{}, fmt.Errorf("%w: unknown mode %q (expected %q or %q)",
			ErrInvalidArgument, mode, ModeConservative, ModePainterly)
	}
	return cfg, nil
}

// Modes lists the built-in modes in a stable order.
func Modes() []Mode {
	return []Mode{ModeConservative, ModePainterly}
}

// Light anchors: fixed hue directions highlights and shadows are biased
// toward. Warm light pulls highlights warm and shadows cool; cool light
// does the opposite.
const (
	WarmAnchorHue = 65
	CoolAnchorHue = 205
)

// Engine-wide constants, independent of mode.
const (
	// nearNeutralChroma is the base-chroma threshold below which a base
	// colour is treated as effectively grey.
	nearNeutralChroma = 0.03

	// hueFreezeChroma and hueDampChroma bound the hue stability damping:
	// below the freeze floor hue shift is suppressed entirely; between
	// floor and reference it fades in quadratically.
	hueFreezeChroma = 0.012
	hueDampChroma   = 0.045

	// convergenceStart is the highlight position where the Cartesian
	// pull toward the light anchor begins ramping in.
	convergenceStart = 0.6

	// highlightChromaFalloff scales the extra chroma suppression applied
	// on the light half of the ladder.
	highlightChromaFalloff = 0.5
	highlightFalloffExp    = 2.2
)

// GuardrailBand describes one family guardrail: a base-hue interval that
// identifies the family, the hue region treated as drift for that family,
// and the ceiling drifted highlights are clamped back to. Wraparound
// intervals (LoMin > LoMax) span 0°.
type GuardrailBand struct {
	Name string

	// Base-hue membership interval, inclusive. A second interval is
	// used for wraparound families; zero-valued when unused.
	BaseMin, BaseMax   float64
	BaseMin2, BaseMax2 float64
	wrap               bool

	// Drift interval: a top-highlight hue inside it is clamped.
	DriftMin, DriftMax float64

	// Ceiling the clamped hue is set to. For the yellow band this is
	// mode-dependent and resolved at plan time.
	Ceiling float64
}

// GuardrailBands returns the static family guardrail table. The yellow
// ceiling is a placeholder here; planning substitutes the mode's value.
func GuardrailBands() []GuardrailBand {
	return []GuardrailBand{
		{
			Name:    "yellow",
			BaseMin: 60, BaseMax: 110,
			// Clamp only hues that drifted green-ward short of wrapping;
			// DriftMax stops the rule from touching unrelated hue regions.
			DriftMin: 0, DriftMax: 200,
			Ceiling: 0, // mode YellowCeiling
		},
		{
			Name:    "red",
			BaseMin: 320, BaseMax: 360,
			BaseMin2: 0, BaseMax2: 50,
			wrap:     true,
			DriftMin: 80, DriftMax: 200,
			Ceiling:  75,
		},
	}
}
