package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/koyo/internal/ramp"
	"github.com/spf13/cobra"
)

// newModesCmd builds the modes command, which prints the tunables of the
// built-in modes so a config file only needs to override what differs.
func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the built-in tuning modes",
		Long: `List the built-in tuning modes and their tunables.

Any tunable can be overridden per mode via --config; see 'koyo ramp
--help' for the file layout. Keys in the table match the TOML keys.`,
		Run: func(cmd *cobra.Command, args []string) {
			headers := []string{"key"}
			for _, m := range ramp.Modes() {
				headers = append(headers, string(m))
			}

			rows := [][]string{
				{"max-hue-shift"},
				{"chroma-retention"},
				{"chroma-exponent"},
				{"convergence"},
				{"neutral-tint-strength"},
				{"neutral-tint-max"},
				{"neutral-tint-exponent"},
				{"endpoint-chroma-floor"},
				{"yellow-ceiling"},
			}
			for _, m := range ramp.Modes() {
				cfg, _ := ramp.ConfigFor(m)
				values := []float64{
					cfg.MaxHueShift,
					cfg.ChromaRetention,
					cfg.ChromaExponent,
					cfg.Convergence,
					cfg.NeutralTintStrength,
					cfg.NeutralTintMax,
					cfg.NeutralTintExponent,
					cfg.EndpointChromaFloor,
					cfg.YellowCeiling,
				}
				for i, v := range values {
					rows[i] = append(rows[i], strconv.FormatFloat(v, 'g', -1, 64))
				}
			}

			t := newTable(headers)
			for _, row := range rows {
				t.addRow(row)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.render())
		},
	}
}
