package ramp

import "testing"

func TestResolveGuardrail(t *testing.T) {
	cfg, err := ConfigFor(ModePainterly)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		baseHue     float64
		temperature float64
		nearNeutral bool
		wantBand    string
	}{
		{name: "yellow base under cool light", baseHue: 90, temperature: -0.5, wantBand: "yellow"},
		{name: "yellow band lower edge", baseHue: 60, temperature: -0.1, wantBand: "yellow"},
		{name: "yellow band upper edge", baseHue: 110, temperature: -1, wantBand: "yellow"},
		{name: "red base under cool light", baseHue: 25, temperature: -0.5, wantBand: "red"},
		{name: "wraparound red base", baseHue: 340, temperature: -0.5, wantBand: "red"},
		{name: "yellow base under warm light", baseHue: 90, temperature: 0.5, wantBand: ""},
		{name: "yellow base under neutral light", baseHue: 90, temperature: 0, wantBand: ""},
		{name: "blue base under cool light", baseHue: 262, temperature: -1, wantBand: ""},
		{name: "green base under cool light", baseHue: 140, temperature: -1, wantBand: ""},
		{name: "near-neutral base never guarded", baseHue: 90, temperature: -1, nearNeutral: true, wantBand: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveGuardrail(tt.baseHue, tt.temperature, cfg, tt.nearNeutral)
			if tt.wantBand == "" {
				if got != nil {
					t.Errorf("expected no guardrail, got %q", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %q guardrail, got none", tt.wantBand)
			}
			if got.Name != tt.wantBand {
				t.Errorf("guardrail = %q, want %q", got.Name, tt.wantBand)
			}
			if tt.wantBand == "yellow" && got.Ceiling != cfg.YellowCeiling {
				t.Errorf("yellow ceiling = %v, want mode value %v", got.Ceiling, cfg.YellowCeiling)
			}
		})
	}
}

// TestYellowFamilyStaysYellow checks that cool light cannot push the top
// highlights of a yellow-family base past the mode's hue ceiling.
func TestYellowFamilyStaysYellow(t *testing.T) {
	base, err := ParseHex("#D9A520")
	if err != nil {
		t.Fatal(err)
	}
	if base.H < 60 || base.H > 110 {
		t.Fatalf("test colour hue %v outside the yellow family", base.H)
	}

	for _, mode := range Modes() {
		cfg, err := ConfigFor(mode)
		if err != nil {
			t.Fatal(err)
		}
		for _, temp := range []float64{-0.4, -0.8, -1} {
			colors, err := GenerateColors("#D9A520", temp, 9, mode)
			if err != nil {
				t.Fatalf("GenerateColors failed: %v", err)
			}
			for i := 6; i < 9; i++ {
				c := colors[i]
				if c.C <= hueFreezeChroma {
					continue
				}
				if c.H > cfg.YellowCeiling+1e-9 && c.H < 200 {
					t.Errorf("mode %s temp %v: rung %d hue %v exceeds yellow ceiling %v",
						mode, temp, i, c.H, cfg.YellowCeiling)
				}
			}
		}
	}
}

// TestRedFamilyAvoidsForbiddenBand checks that cool light cannot land a
// red base's top highlights in the green-adjacent forbidden band.
func TestRedFamilyAvoidsForbiddenBand(t *testing.T) {
	for _, hex := range []string{"#C0392B", "#DC143C"} {
		base, err := ParseHex(hex)
		if err != nil {
			t.Fatal(err)
		}
		inRed := (base.H >= 320 && base.H < 360) || (base.H >= 0 && base.H <= 50)
		if !inRed {
			t.Fatalf("test colour %s hue %v outside the red family", hex, base.H)
		}

		for _, mode := range Modes() {
			colors, err := GenerateColors(hex, -1, 9, mode)
			if err != nil {
				t.Fatalf("GenerateColors failed: %v", err)
			}
			for i := 6; i < 9; i++ {
				c := colors[i]
				if c.C <= hueFreezeChroma {
					continue
				}
				if c.H >= 80 && c.H <= 200 {
					t.Errorf("%s mode %s: rung %d hue %v inside forbidden band [80, 200]",
						hex, mode, i, c.H)
				}
			}
		}
	}
}

// TestGuardrailLeavesLowerRungsAlone verifies the correction is bounded
// to the top highlights: midtones may drift freely.
func TestGuardrailLeavesLowerRungsAlone(t *testing.T) {
	guarded, err := GenerateColors("#D9A520", -1, 9, ModePainterly)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ConfigFor(ModePainterly)
	if err != nil {
		t.Fatal(err)
	}
	cfg.YellowCeiling = 400 // disarm the clamp

	free, err := GenerateColors("#D9A520", -1, 9, ModePainterly, WithModeConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 6; i++ {
		if guarded[i].H != free[i].H {
			t.Errorf("rung %d below the guarded range changed: %v vs %v", i, guarded[i].H, free[i].H)
		}
	}
}
