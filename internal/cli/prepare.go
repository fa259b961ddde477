package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/wklprep/internal/logging"
	"github.com/vvka-141/wklprep/internal/prepare"
	"github.com/vvka-141/wklprep/internal/render"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Prepare the parameter mapping, request string and delay of a job step",
	Long: `Prepare collects the job step bindings, normalizes DURTIME, obfuscates
PASSWORD and prints the resulting parameter mapping, the flattened request
string and the launch delay.

Bindings:
  USER HOST SSIDS THREADS DURTIME TYPE PASSWORD NOCLEAN PARALLEL STAXThreadID
  MACHINE and START are accepted but never forwarded.
  Names are case-insensitive.

Sources (later override earlier):
  1. wklprep.yaml in the working directory, or --config
  2. WKLPREP_<NAME> environment variables (a .env file in the working
     directory is loaded first)
  3. --params-file files (.env format, later files override earlier ones)
  4. --param NAME=VALUE
  5. dedicated flags (--host, --durtime, ...)

Password:
  For safety there is no --password flag. Use WKLPREP_PASSWORD, a params
  file, or --password-stdin (prompts without echo on a terminal).

Examples:
  # Prepare from flags
  wklprep prepare --user bob --host h1 --threads 4 --durtime 2h \
    --type full --parallel --thread-id 3 --password-stdin

  # Prepare from a params file and print JSON
  wklprep prepare --params-file job.env -o json

  # Shell-friendly output
  eval "$(wklprep prepare --params-file job.env -o env)"`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

type prepareFlagValues struct {
	configPath    string
	params        []string
	paramsFiles   []string
	output        string
	passwordStdin bool

	user, host, ssids, threads, durtime, jobType string
	noClean, parallel                            bool
	threadID                                     int
}

var prepareFlags prepareFlagValues

func init() {
	rootCmd.AddCommand(prepareCmd)
	addPrepareFlags(prepareCmd, &prepareFlags)
}

func addPrepareFlags(cmd *cobra.Command, f *prepareFlagValues) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "",
		"Path to a wklprep.yaml config file (default: ./wklprep.yaml if present)")
	cmd.Flags().StringArrayVar(&f.params, "param", nil,
		"Bindings as NAME=VALUE pairs (can be specified multiple times)\n"+
			"Example: --param HOST=h1 --param DURTIME=2h")
	cmd.Flags().StringArrayVar(&f.paramsFiles, "params-file", nil,
		"Load bindings from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, --param overrides all files")
	cmd.Flags().StringVarP(&f.output, "output", "o", "",
		"Output format: text|json|yaml|env (default: text, or output in wklprep.yaml)")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false,
		"Read PASSWORD from stdin (prompts without echo on a terminal)")

	cmd.Flags().StringVar(&f.user, "user", "", "USER binding")
	cmd.Flags().StringVar(&f.host, "host", "", "HOST binding")
	cmd.Flags().StringVar(&f.ssids, "ssids", "", "SSIDS binding")
	cmd.Flags().StringVar(&f.threads, "threads", "", "THREADS binding")
	cmd.Flags().StringVar(&f.durtime, "durtime", "",
		"DURTIME binding; m, h and d units are converted to seconds\n"+
			"Examples: 5m, 2h, 3d, 600")
	cmd.Flags().StringVar(&f.jobType, "type", "", "TYPE binding")
	cmd.Flags().BoolVar(&f.noClean, "noclean", false, "NOCLEAN binding")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "PARALLEL binding")
	cmd.Flags().IntVar(&f.threadID, "thread-id", 0,
		"STAXThreadID of the launching thread; the launch delay is this value * 1000 ms")

	_ = cmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
	_ = cmd.RegisterFlagCompletionFunc("param", completeBindingNames)
	_ = cmd.RegisterFlagCompletionFunc("params-file", completeEnvFiles)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	// A missing .env is not an error.
	_ = godotenv.Load()

	resolved, err := resolveInputs(cmd, prepareFlags, os.Environ(), logger)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(resolved.output)
	if err != nil {
		return err
	}

	res, err := prepare.New(prepare.WithLogger(logger)).Prepare(resolved.inputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return render.Write(out, res, format, render.Options{Styled: isStyledWriter(out)})
}
