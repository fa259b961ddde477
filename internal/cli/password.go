package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wklprep/internal/password"
	"github.com/vvka-141/wklprep/internal/staf"
)

var obfuscateCmd = &cobra.Command{
	Use:   "obfuscate [password]",
	Short: "Encode a password as a PASSWORDBASE64 token",
	Long: `Obfuscate strips STAF privacy delimiters (!!@...@!!) from a password and
prints it base64 encoded on one line. This is obfuscation, not encryption.

Without an argument, or with --stdin, the password is read from stdin
(prompted without echo on a terminal). An argument and --stdin together
are rejected.

Examples:
  wklprep obfuscate --stdin
  printf 'secret' | wklprep obfuscate`,
	Args: obfuscateArgs,
	RunE: runObfuscate,
}

var revealCmd = &cobra.Command{
	Use:   "reveal <token>",
	Short: "Decode a PASSWORDBASE64 token",
	Args:  requireOneArg("token", "c2VjcmV0"),
	RunE:  runReveal,
}

var obfuscateStdin bool

func init() {
	rootCmd.AddCommand(obfuscateCmd)
	rootCmd.AddCommand(revealCmd)

	obfuscateCmd.Flags().BoolVar(&obfuscateStdin, "stdin", false, "Read the password from stdin")
}

// obfuscateArgs accepts at most one password, and none with --stdin.
func obfuscateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return err
	}
	if len(args) == 1 && obfuscateStdin {
		return fmt.Errorf("invalid argument: a password argument cannot be combined with --stdin")
	}
	return nil
}

func runObfuscate(cmd *cobra.Command, args []string) error {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		raw = pw
	}

	fmt.Fprintln(cmd.OutOrStdout(), password.Obfuscate(raw, staf.Delimiters{}))
	return nil
}

func runReveal(cmd *cobra.Command, args []string) error {
	plain, err := password.Reveal(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), plain)
	return nil
}
