package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/koyo/internal/ramp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRampCmd builds the ramp command.
func newRampCmd() *cobra.Command {
	var (
		temperature float64
		steps       int
		mode        string
		format      string
		preview     bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "ramp <base-colour>",
		Short: "Generate a tonal ladder from a base colour",
		Long: `Generate a tonal ladder from a base colour.

The base colour is a 6-digit hex code; the leading # is optional. The
ladder is printed darkest to lightest.

Temperature runs from -1 (fully cool light) through 0 (neutral) to +1
(fully warm light). With neutral light the ladder is purely tonal: every
rung keeps the base hue.

Examples:
  # Neutral-light ladder, defaults (9 steps, conservative)
  koyo ramp '#2F6FED'

  # Warm painterly ladder
  koyo ramp 2F6FED --temperature 0.6 --mode painterly

  # Cool light on a grey base: the light reveals itself on the ladder
  koyo ramp 808080 -t -1 -s 11

  # CSS custom properties
  koyo ramp '#D9A520' -t -0.4 --format css

  # Custom tunables
  koyo ramp '#2F6FED' -t 0.6 --config koyo.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRamp(cmd, args[0], temperature, steps, mode, format, preview, configPath)
		},
	}

	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "light temperature in [-1, 1]")
	cmd.Flags().IntVarP(&steps, "steps", "s", 9, "number of rungs (9 or 11)")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(ramp.ModeConservative), "tuning mode (conservative, painterly)")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, json, css)")
	cmd.Flags().BoolVar(&preview, "preview", false, "render colour swatches alongside the output")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with mode tunable overrides")

	return cmd
}

func runRamp(cmd *cobra.Command, base string, temperature float64, steps int, mode, format string, preview bool, configPath string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	req := ramp.Request{
		BaseColor:   base,
		Temperature: temperature,
		Steps:       steps,
		Mode:        ramp.Mode(mode),
	}

	var opts []ramp.Option
	if verbose {
		opts = append(opts, ramp.WithTraceLogger(hclog.New(&hclog.LoggerOptions{
			Name:   "koyo",
			Output: cmd.ErrOrStderr(),
			Level:  hclog.Debug,
		})))
	}
	if configPath != "" {
		cfg, err := loadModeConfig(configPath, req.Mode)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg != nil {
			opts = append(opts, ramp.WithModeConfig(*cfg))
		}
	}

	hexes, err := req.Generate(opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if preview && !quiet {
		fmt.Fprint(out, renderPreview(hexes, isTerminal()))
	}

	rendered, err := renderOutput(req, hexes, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)
	return nil
}

// isTerminal reports whether stdout is an interactive terminal. Swatch
// blocks are only useful on a real terminal; piped output gets plain
// labels instead.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
