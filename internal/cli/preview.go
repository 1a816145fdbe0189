package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmylchreest/koyo/internal/ramp"
)

const swatchWidth = 10

// renderPreview renders one line per rung: a solid swatch block followed
// by the hex code and the rung's OKLCH coordinates. When stdout is not a
// terminal the blocks are skipped and only the labels are printed.
func renderPreview(hexes []string, tty bool) string {
	var b strings.Builder
	for i, hex := range hexes {
		label := fmt.Sprintf("%2d  %s", i, hex)
		if c, err := ramp.ParseHex(hex); err == nil {
			label += fmt.Sprintf("  L=%.3f C=%.3f H=%5.1f", c.L, c.C, c.H)
		}
		if tty {
			b.WriteString(swatchStyle(hex).Render(strings.Repeat(" ", swatchWidth)))
			b.WriteString("  ")
		}
		b.WriteString(label)
		b.WriteByte('\n')
	}
	return b.String()
}

// swatchStyle builds the lipgloss style for one swatch block.
func swatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(labelColour(hex)))
}

// labelColour picks black or white for text over a swatch, using the
// rung's own perceptual lightness.
func labelColour(hex string) string {
	c, err := ramp.ParseHex(hex)
	if err != nil || c.L < 0.6 {
		return "#FFFFFF"
	}
	return "#000000"
}
