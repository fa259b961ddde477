package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wklprep/internal/params"
	"github.com/vvka-141/wklprep/internal/request"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten NAME=VALUE...",
	Short: "Flatten NAME=VALUE pairs into a request string",
	Long: `Flatten joins the pairs, in argument order, into a request string:
empty and "false" values are dropped, "true" values become bare flags and
MACHINE/START are never emitted.

With --parse the arguments are read as a request string instead and printed
back as NAME=VALUE lines.

Examples:
  wklprep flatten HOST=h1 THREADS=4 PARALLEL=true NOCLEAN=false
  #  HOST h1 THREADS 4 PARALLEL

  wklprep flatten --parse --flag PARALLEL " HOST h1 THREADS 4 PARALLEL"`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeBindingNames,
	RunE:              runFlatten,
}

type flattenFlagValues struct {
	parse bool
	flags []string
}

var flattenFlags flattenFlagValues

func init() {
	rootCmd.AddCommand(flattenCmd)

	flattenCmd.Flags().BoolVar(&flattenFlags.parse, "parse", false,
		"Parse a request string back into NAME=VALUE lines")
	flattenCmd.Flags().StringSliceVar(&flattenFlags.flags, "flag", []string{wklprep.KeyNoClean, wklprep.KeyParallel},
		"Names read as bare flags with --parse")
}

func runFlatten(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flattenFlags.parse {
		parsed := request.ParseRequest(strings.Join(args, " "), flattenFlags.flags...)
		for _, pair := range parsed.Pairs() {
			fmt.Fprintf(out, "%s=%s\n", pair.Key, pair.Value)
		}
		return nil
	}

	pairs, err := params.ParseKeyValuePairs(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, request.Flatten(request.NewParams(pairs...)))
	return nil
}
