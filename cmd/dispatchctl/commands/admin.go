package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var units = []string{"minute", "hour", "day", "month", "year"}

// ClockCmd prints the virtual clock.
func ClockCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Show the virtual clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, http.MethodGet, "/admin/clock", nil)
		},
	}
}

// AdvanceCmd moves the virtual clock forward by one unit.
func AdvanceCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:       "advance <minute|hour|day|month|year>",
		Short:     "Advance the virtual clock by one unit",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: units,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, http.MethodPost, "/admin/clock/advance", map[string]string{"unit": args[0]})
		},
	}
}

// RiskWindowCmd shows the risk window, or sets it when a duration is given.
func RiskWindowCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "risk-window [duration]",
		Short: "Show or set the at-risk window (e.g. 90m, 2h)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return app.run(cmd, http.MethodGet, "/admin/risk-window", nil)
			}
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[0], err)
			}
			if d < 0 {
				return fmt.Errorf("risk window must not be negative")
			}
			return app.run(cmd, http.MethodPut, "/admin/risk-window", map[string]string{"risk_window": d.String()})
		},
	}
}

// SimulatorCmd groups the simulator controls.
func SimulatorCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulator",
		Short: "Control the clock simulator",
	}

	var interval int
	start := &cobra.Command{
		Use:   "start",
		Short: "Start the simulator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval < 0 {
				return fmt.Errorf("--interval must be positive")
			}
			return app.run(cmd, http.MethodPost, "/admin/simulator/start", map[string]int{"interval_minutes": interval})
		},
	}
	start.Flags().IntVarP(&interval, "interval", "i", 0, "Virtual minutes per tick (0 uses the server default)")

	cmd.AddCommand(
		start,
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the simulator",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.run(cmd, http.MethodPost, "/admin/simulator/stop", nil)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report whether the simulator is running",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.run(cmd, http.MethodGet, "/admin/simulator", nil)
			},
		},
	)
	return cmd
}

// ResetCmd wipes every record and resets the clock.
func ResetCmd(app *AppContext) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all records and reset the clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes every record; pass --yes to confirm")
			}
			return app.run(cmd, http.MethodPost, "/admin/reset", nil)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}

// InitializeCmd resets and reloads the seed dataset.
func InitializeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "initialize",
		Short: "Reset and load the seed dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, http.MethodPost, "/admin/initialize", nil)
		},
	}
}
