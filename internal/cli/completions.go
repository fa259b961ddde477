package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wklprep/internal/render"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// completeOutputFormats provides shell completion for the --output flag.
func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range render.Formats {
		if strings.HasPrefix(string(f), toComplete) {
			matches = append(matches, string(f))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeBindingNames completes NAME= for --param and flatten arguments.
func completeBindingNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := append(append([]string{}, wklprep.OutputKeys...), wklprep.KeyPassword, wklprep.KeyThreadID)
	names = append(names, wklprep.ControlKeys...)

	var matches []string
	for _, name := range names {
		if name == wklprep.KeyPasswordBase64 {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(toComplete)) {
			matches = append(matches, name+"=")
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeEnvFiles restricts --params-file completion to .env files.
func completeEnvFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"env"}, cobra.ShellCompDirectiveFilterFileExt
}
