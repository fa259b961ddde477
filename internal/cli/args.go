package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// requireOneArg builds an Args validator for commands taking exactly one
// positional argument, with a usage example in the error.
func requireOneArg(name, example string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf(`missing required argument: <%s>

Usage: %s

Example:
  %s %s`, name, cmd.UseLine(), cmd.CommandPath(), example)
		}
		if len(args) > 1 {
			return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
		}
		return nil
	}
}
