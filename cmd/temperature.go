package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rail44/drills/internal/log"
	"github.com/rail44/drills/internal/temperature"
)

var (
	toScale string

	// values left after flags are split out; see parseTemperatureArgs
	temperatureArgs []string
)

var temperatureCmd = &cobra.Command{
	Use:   "temperature [value...]",
	Short: "Convert temperatures between Fahrenheit and Celsius",
	Long: `Convert each value into the scale given by --to.

Negative values such as -40 are read as temperatures, not flags.
Without values it converts 32 and 68 degrees Fahrenheit to Celsius.`,
	// pflag reads "-40" as a cluster of shorthand flags, so numeric
	// arguments are separated before the flags are parsed.
	DisableFlagParsing: true,
	PersistentPreRunE:  parseTemperatureArgs,
	RunE:               runTemperature,
}

func init() {
	temperatureCmd.Flags().StringVar(&toScale, "to", "celsius", "target scale: celsius (c) or fahrenheit (f)")
	rootCmd.AddCommand(temperatureCmd)
}

func parseTemperatureArgs(cmd *cobra.Command, args []string) error {
	values, flagArgs := splitNumericArgs(args)

	flags := cmd.Flags()
	if err := flags.Parse(flagArgs); err != nil {
		return err
	}
	temperatureArgs = append(values, flags.Args()...)

	if help, _ := flags.GetBool("help"); help {
		return nil
	}
	return setup(cmd, temperatureArgs)
}

// splitNumericArgs moves every token that parses as a number, and everything
// after "--", out of the arguments handed to the flag parser.
func splitNumericArgs(args []string) (values, flagArgs []string) {
	for i, arg := range args {
		if arg == "--" {
			return append(values, args[i+1:]...), flagArgs
		}
		if _, err := strconv.ParseFloat(arg, 64); err == nil {
			values = append(values, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
	}
	return values, flagArgs
}

func runTemperature(cmd *cobra.Command, _ []string) error {
	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}

	to, err := temperature.ParseScale(toScale)
	if err != nil {
		return err
	}

	args := temperatureArgs
	if len(args) == 0 {
		args = []string{"32", "68"}
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid temperature %q: %w", arg, err)
		}
		values[i] = v
	}

	from := to.Other()
	for _, v := range values {
		if temperature.BelowAbsoluteZero(v, from) {
			log.Warn("temperature is below absolute zero",
				slog.Float64("value", v), slog.String("scale", from.String()))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s = %.1f%s\n",
			strconv.FormatFloat(v, 'f', -1, 64), from.Symbol(),
			temperature.Convert(v, to), to.Symbol())
	}
	return nil
}
