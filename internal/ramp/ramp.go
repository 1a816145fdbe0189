package ramp

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
)

// Request fully determines one ramp. The engine is a pure function of
// this tuple and its mode config; there is no hidden state.
type Request struct {
	BaseColor   string  `json:"baseColor"`
	Temperature float64 `json:"temperature"`
	Steps       int     `json:"steps"`
	Mode        Mode    `json:"mode"`
}

// Supported step counts.
var validSteps = map[int]bool{9: true, 11: true}

// Option configures optional engine behaviour.
type Option func(*options)

type options struct {
	logger hclog.Logger
	cfg    *ModeConfig
}

// WithTraceLogger attaches a logger that receives per-step hue and gamut
// traces at Debug level. Diagnostics only; output never affects results.
func WithTraceLogger(l hclog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithModeConfig overrides the built-in config for the requested mode.
// The config is used as given; callers own its consistency.
func WithModeConfig(cfg ModeConfig) Option {
	return func(o *options) { o.cfg = &cfg }
}

// plan is the per-call classification of a request: which branch the base
// colour takes, which anchors apply, and whether a family guardrail is
// armed. Classified once, then consulted by every step.
type plan struct {
	base        Color
	cfg         ModeConfig
	temperature float64
	steps       int
	mid         int
	nearNeutral bool

	shadowAnchor    float64
	highlightAnchor float64
	guard           *GuardrailBand
}

func newPlan(base Color, temperature float64, steps int, cfg ModeConfig) *plan {
	pl := &plan{
		base:        base,
		cfg:         cfg,
		temperature: temperature,
		steps:       steps,
		mid:         steps / 2,
		// The near-neutral branch only exists under tinted light; with
		// neutral light a grey base stays a purely tonal ladder.
		nearNeutral: base.C <= nearNeutralChroma && temperature != 0,
	}
	if temperature >= 0 {
		pl.highlightAnchor, pl.shadowAnchor = WarmAnchorHue, CoolAnchorHue
	} else {
		pl.highlightAnchor, pl.shadowAnchor = CoolAnchorHue, WarmAnchorHue
	}
	pl.guard = resolveGuardrail(base.H, temperature, cfg, pl.nearNeutral)
	return pl
}

// Generate produces the tonal ladder as hex strings ordered darkest to
// lightest. See GenerateColors for the perceptual-space equivalent.
func Generate(baseHex string, temperature float64, steps int, mode Mode, opts ...Option) ([]string, error) {
	colors, err := GenerateColors(baseHex, temperature, steps, mode, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out, nil
}

// GenerateColors produces the ladder in OKLCH, ordered darkest to
// lightest by construction. All validation happens up front; a non-nil
// error means no output at all.
func GenerateColors(baseHex string, temperature float64, steps int, mode Mode, opts ...Option) ([]Color, error) {
	o := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := ParseHex(baseHex)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(temperature) || math.IsInf(temperature, 0) || temperature < -1 || temperature > 1 {
		return nil, fmt.Errorf("%w: temperature must be a finite number in [-1, 1], got %v",
			ErrInvalidArgument, temperature)
	}
	if !validSteps[steps] {
		return nil, fmt.Errorf("%w: steps must be 9 or 11, got %d", ErrInvalidArgument, steps)
	}
	cfg, err := ConfigFor(mode)
	if err != nil {
		return nil, err
	}
	if o.cfg != nil {
		cfg = *o.cfg
	}

	pl := newPlan(base, temperature, steps, cfg)
	lights := lightnessProfile(base.L, steps)

	out := make([]Color, steps)
	for i := range out {
		p := float64(i-pl.mid) / float64(pl.mid)

		chroma := pl.chromaFor(i, p)
		hue := pl.hueFor(p, chroma)
		c := Color{L: lights[i], C: chroma, H: hue}
		c = pl.converge(p, c)
		c = pl.applyGuardrails(i, c)

		clamped := ClampToGamut(c)
		if o.logger.IsDebug() {
			o.logger.Debug("step",
				"index", i,
				"position", p,
				"hue", c.H,
				"hue_delta", HueDelta(base.H, c.H),
				"chroma", c.C,
				"gamut_chroma", clamped.C,
				"lightness", clamped.L,
			)
		}
		out[i] = clamped
	}
	return out, nil
}

// Generate runs the engine for a snapshot request.
func (r Request) Generate(opts ...Option) ([]string, error) {
	return Generate(r.BaseColor, r.Temperature, r.Steps, r.Mode, opts...)
}
