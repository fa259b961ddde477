package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wklprep",
	Short: "Prepare workload request parameters for a STAX job step",
	Long: `wklprep prepares the parameters a STAF/STAX job step hands to the DB2
workload service before launching a remote job:

  - DURTIME with an m, h or d unit is converted to seconds
  - PASSWORD is stripped of STAF privacy delimiters and base64 encoded
  - the bindings are flattened into a single request string
  - the launch delay of the calling thread is STAXThreadID * 1000 ms

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - DURTIME could not be normalized
  12 - Password token could not be decoded`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
