package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wklprep/internal/duration"
	"github.com/vvka-141/wklprep/internal/logging"
)

var durationCmd = &cobra.Command{
	Use:   "duration <value>",
	Short: "Convert a DURTIME value to seconds",
	Long: `Duration prints the number of seconds for a value with an m, h or d unit.
Values without one of those units are printed unchanged.

Examples:
  wklprep duration 5m    # 300
  wklprep duration 3d    # 259200
  wklprep duration 600   # 600 (unchanged)`,
	Args: requireOneArg("value", "2h"),
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(durationCmd)
}

func runDuration(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	v, err := duration.Normalize(args[0])
	if err != nil {
		return err
	}
	if !v.IsSeconds() {
		logger.Verbose("%q has no m/h/d unit, printed unchanged", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}
