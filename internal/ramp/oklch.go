// Package ramp generates perceptually uniform tonal ladders in OKLCH,
// biasing hue per step according to a simulated light temperature.
package ramp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is a colour in OKLCH form. L is lightness in [0, 1], C is chroma
// (0 = achromatic, unbounded until gamut-clamped), H is hue in degrees
// [0, 360). Values are never mutated in place; every transformation
// returns a new Color.
type Color struct {
	L float64
	C float64
	H float64
}

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ParseHex parses a 6-digit hex colour (leading # optional) into OKLCH.
// Returns ErrInvalidColorFormat for anything else.
func ParseHex(hex string) (Color, error) {
	if !hexPattern.MatchString(hex) {
		return Color{}, fmt.Errorf("%w: expected 6 hex digits, got %q", ErrInvalidColorFormat, hex)
	}
	digits := strings.TrimPrefix(hex, "#")

	// Cannot fail after the pattern match.
	v, _ := strconv.ParseUint(digits, 16, 32)
	r := float64(v>>16&0xff) / 255.0
	g := float64(v>>8&0xff) / 255.0
	b := float64(v&0xff) / 255.0

	l, a, bb := linearToOKLab(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))
	return labToLCH(l, a, bb), nil
}

// CanonicalHex normalizes a valid hex colour to uppercase with a leading #.
func CanonicalHex(hex string) (string, error) {
	if !hexPattern.MatchString(hex) {
		return "", fmt.Errorf("%w: expected 6 hex digits, got %q", ErrInvalidColorFormat, hex)
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#")), nil
}

// Hex converts the colour to an uppercase #RRGGBB string. Each channel is
// rounded to the nearest integer in [0, 255]; out-of-range channels are
// clamped, though gamut-clamped colours never reach that path.
func (c Color) Hex() string {
	l, a, b := c.lab()
	lr, lg, lb := oklabToLinear(l, a, b)
	return fmt.Sprintf("#%02X%02X%02X",
		channelByte(linearToSRGB(lr)),
		channelByte(linearToSRGB(lg)),
		channelByte(linearToSRGB(lb)))
}

// lab returns the Cartesian OKLab form (L, a, b) of the colour.
func (c Color) lab() (l, a, b float64) {
	hRad := c.H * (math.Pi / 180.0)
	return c.L, c.C * math.Cos(hRad), c.C * math.Sin(hRad)
}

// labToLCH converts Cartesian OKLab to polar OKLCH.
func labToLCH(l, a, b float64) Color {
	return Color{
		L: l,
		C: math.Sqrt(a*a + b*b),
		H: NormalizeHue(math.Atan2(b, a) * (180.0 / math.Pi)),
	}
}

// gamutTolerance absorbs floating-point noise when deciding whether a
// linear channel is displayable.
const gamutTolerance = 1e-4

// gamutIterations bounds the chroma binary search. The search halves the
// interval each pass, so residual error is below 2^-20 of the input
// chroma and imperceptible.
const gamutIterations = 20

// InGamut reports whether the colour is representable in 8-bit sRGB
// within a small numeric tolerance.
func (c Color) InGamut() bool {
	l, a, b := c.lab()
	lr, lg, lb := oklabToLinear(l, a, b)
	return inRange(lr) && inRange(lg) && inRange(lb)
}

func inRange(v float64) bool {
	return v >= -gamutTolerance && v <= 1+gamutTolerance
}

// ClampToGamut reduces chroma until the colour fits the sRGB gamut,
// holding lightness and hue fixed. Colours already in gamut are returned
// unchanged. Binary-searches chroma in [0, c.C]; the best in-gamut chroma
// found within the iteration budget is accepted.
func ClampToGamut(c Color) Color {
	if c.InGamut() {
		return c
	}
	lo, hi := 0.0, c.C
	for i := 0; i < gamutIterations; i++ {
		mid := (lo + hi) / 2
		if (Color{L: c.L, C: mid, H: c.H}).InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Color{L: c.L, C: lo, H: c.H}
}

// NormalizeHue wraps a hue angle into [0, 360).
func NormalizeHue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDelta returns the shortest signed arc from h1 to h2 in (-180, 180].
func HueDelta(h1, h2 float64) float64 {
	d := math.Mod(h2-h1, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}

// blendHue moves h1 toward h2 along the shortest arc by fraction t.
func blendHue(h1, h2, t float64) float64 {
	return NormalizeHue(h1 + HueDelta(h1, h2)*t)
}

// srgbToLinear converts one sRGB channel [0,1] to linear light.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts one linear channel [0,1] to sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func channelByte(v float64) uint8 {
	n := math.Round(v * 255.0)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// linearToOKLab converts linear RGB to OKLab using the standard M1/M2
// matrices. https://bottosson.github.io/posts/oklab/
func linearToOKLab(r, g, b float64) (float64, float64, float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinear is the inverse of linearToOKLab.
func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}
