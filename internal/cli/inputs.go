package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/wklprep/internal/config"
	"github.com/vvka-141/wklprep/internal/params"
	"github.com/vvka-141/wklprep/internal/request"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// resolvedInputs is what the prepare command runs on.
type resolvedInputs struct {
	inputs wklprep.Inputs
	output string
}

// resolveInputs layers every binding source, lowest priority first:
// config file, environment, params files, --param, dedicated flags, stdin password.
func resolveInputs(
	cmd *cobra.Command,
	flags prepareFlagValues,
	environ []string,
	logger wklprep.Logger,
) (*resolvedInputs, error) {
	var in wklprep.Inputs
	resolved := &resolvedInputs{}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		logger.Verbose("Applying %d binding(s) from config", len(cfg.Params))
		if err := params.ApplyMap(&in, cfg.Params); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		resolved.output = cfg.Output
	}

	envPairs := params.FromEnviron(environ)
	if len(envPairs) > 0 {
		logger.Verbose("Applying %d binding(s) from %s* environment variables", len(envPairs), wklprep.EnvPrefix)
	}
	if err := params.ApplyPairs(&in, envPairs); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	filePairs, err := params.LoadEnvFiles(flags.paramsFiles, logger)
	if err != nil {
		return nil, err
	}
	if err := params.ApplyPairs(&in, filePairs); err != nil {
		return nil, fmt.Errorf("params file: %w", err)
	}

	cliPairs, err := params.ParseKeyValuePairs(flags.params)
	if err != nil {
		return nil, fmt.Errorf("invalid parameter format: %w", err)
	}
	if hasPassword(cliPairs) {
		logger.Info("Warning: PASSWORD given with --param is visible in shell history and the process list; prefer --password-stdin")
	}
	if err := params.ApplyPairs(&in, cliPairs); err != nil {
		return nil, err
	}
	if len(cliPairs) > 0 {
		logger.Verbose("CLI parameters override %d value(s)", len(cliPairs))
	}

	if err := params.ApplyPairs(&in, changedFlagPairs(cmd, flags)); err != nil {
		return nil, err
	}

	if flags.passwordStdin {
		pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		in.Password = pw
	}

	if flags.output != "" {
		resolved.output = flags.output
	}
	resolved.inputs = in
	return resolved, nil
}

// loadConfig loads an explicit config path, or ./wklprep.yaml when present.
// Returns nil config if the default file does not exist.
func loadConfig(path string) (*config.File, error) {
	explicit := path != ""
	if !explicit {
		path = config.FileName
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load config: %v", wklprep.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// changedFlagPairs turns the dedicated binding flags the user set into pairs.
func changedFlagPairs(cmd *cobra.Command, flags prepareFlagValues) []request.Pair {
	candidates := []struct {
		flag  string
		key   string
		value string
	}{
		{"user", wklprep.KeyUser, flags.user},
		{"host", wklprep.KeyHost, flags.host},
		{"ssids", wklprep.KeySSIDs, flags.ssids},
		{"threads", wklprep.KeyThreads, flags.threads},
		{"durtime", wklprep.KeyDurTime, flags.durtime},
		{"type", wklprep.KeyType, flags.jobType},
		{"noclean", wklprep.KeyNoClean, strconv.FormatBool(flags.noClean)},
		{"parallel", wklprep.KeyParallel, strconv.FormatBool(flags.parallel)},
		{"thread-id", wklprep.KeyThreadID, strconv.Itoa(flags.threadID)},
	}

	var pairs []request.Pair
	for _, c := range candidates {
		if cmd.Flags().Changed(c.flag) {
			pairs = append(pairs, request.Pair{Key: c.key, Value: c.value})
		}
	}
	return pairs
}

func hasPassword(pairs []request.Pair) bool {
	for _, p := range pairs {
		if strings.EqualFold(strings.TrimSpace(p.Key), wklprep.KeyPassword) {
			return true
		}
	}
	return false
}
