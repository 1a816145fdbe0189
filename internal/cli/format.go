package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/koyo/internal/ramp"
)

// rampJSON is the JSON output document for a generated ladder.
type rampJSON struct {
	Base        string   `json:"base"`
	Temperature float64  `json:"temperature"`
	Steps       int      `json:"steps"`
	Mode        string   `json:"mode"`
	Colors      []string `json:"colors"`
}

// renderOutput formats a generated ladder in the requested format.
func renderOutput(req ramp.Request, hexes []string, format string) (string, error) {
	switch format {
	case "hex":
		return strings.Join(hexes, "\n"), nil
	case "json":
		return renderJSON(req, hexes)
	case "css":
		return renderCSS(hexes), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected hex, json or css)", format)
	}
}

func renderJSON(req ramp.Request, hexes []string) (string, error) {
	base, err := ramp.CanonicalHex(req.BaseColor)
	if err != nil {
		return "", err
	}
	doc := rampJSON{
		Base:        base,
		Temperature: req.Temperature,
		Steps:       req.Steps,
		Mode:        string(req.Mode),
		Colors:      hexes,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// renderCSS emits the ladder as CSS custom properties, darkest first.
func renderCSS(hexes []string) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, hex := range hexes {
		fmt.Fprintf(&b, "  --ramp-%d: %s;\n", i, hex)
	}
	b.WriteString("}")
	return b.String()
}
