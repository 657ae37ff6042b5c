package cmd

import (
	"fmt"
	"strconv"

	"measurement-annotation-service/internal/annotation"
	"measurement-annotation-service/internal/config"
	"measurement-annotation-service/internal/domain"
	"measurement-annotation-service/internal/units"

	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var unitsFlag string

	c := &cobra.Command{
		Use:       "format <distance|area> <value>",
		Short:     "Format a single SI value (meters or square meters)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.MeasurementDistance), string(domain.MeasurementArea)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			t, err := domain.ParseMeasurementType(args[0])
			if err != nil {
				return err
			}

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("format: value %q is not a number", args[1])
			}

			system, err := domain.ParseUnitSystem(unitsFlag, cfg.DefaultUnits)
			if err != nil {
				return err
			}

			text, _ := units.NewFormatter(cfg.Locale).Format(t, value, system.Imperial())
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	c.Flags().StringVar(&unitsFlag, "units", "", "metric or imperial (default from DEFAULT_UNITS)")
	return c
}

func newStylesheetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stylesheet",
		Short: "Print the label stylesheet for the host page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), annotation.Stylesheet())
			return err
		},
	}
}
