package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "LSFILES"

// Options is the resolved configuration for one run.
type Options struct {
	Directories []string
	Human       bool
	SortKey     SortKey
	LogLevel    string
}

// bindFlags registers the command's flags and binds them to v.
func bindFlags(cmd *cobra.Command, v *viper.Viper, cfgFile *string) {
	flags := cmd.Flags()

	// Output
	flags.Bool("human", false, "Show human-readable time and file sizes")
	v.BindPFlag("human", flags.Lookup("human"))

	// Sorting
	flags.Bool("bymtime", true, "Sort files by modification time (default)")
	v.BindPFlag("bymtime", flags.Lookup("bymtime"))
	flags.Bool("bysize", false, "Sort files by file size")
	v.BindPFlag("bysize", flags.Lookup("bysize"))
	cmd.MarkFlagsMutuallyExclusive("bymtime", "bysize")

	// Diagnostics and configuration
	flags.String("log-level", defaultLogLevel, "Diagnostic log level: trace, debug, info, warn, error")
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	flags.StringVar(cfgFile, "config", "", "Config file (toml, yaml or json)")

	// bymtime is left without a default so an env or config value can be told apart
	v.SetDefault("human", false)
	v.SetDefault("bysize", false)
	v.SetDefault("log_level", defaultLogLevel)
}

// loadConfig sets up environment lookup and reads cfgFile if one was given.
// No config file is searched for implicitly.
func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv() // LSFILES_HUMAN, LSFILES_BYSIZE, LSFILES_SORT, LSFILES_LOG_LEVEL

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", cfgFile, err)
	}
	return nil
}

// resolveOptions merges flags, environment and config into Options.
// Sort flags given on the command line win over everything else. From env or
// config, bymtime and bysize conflict like the flags do, and "sort" is only
// consulted when neither is set.
func resolveOptions(cmd *cobra.Command, v *viper.Viper, args []string) (Options, error) {
	if len(args) == 0 {
		return Options{}, fmt.Errorf("%w: at least one directory is required", ErrInvalidArgument)
	}

	// --- Sort Key ---
	// bymtime has no viper default, so IsSet is only true when the flag,
	// the environment or the config file provides it.
	flags := cmd.Flags()
	byMtime := v.IsSet("bymtime") && v.GetBool("bymtime")
	key := SortByModTime
	switch {
	case flags.Changed("bymtime"):
		// explicit --bymtime, keep the default
	case flags.Changed("bysize"):
		if v.GetBool("bysize") {
			key = SortBySize
		}
	case v.GetBool("bysize"):
		if byMtime {
			return Options{}, fmt.Errorf("%w: bymtime and bysize are mutually exclusive", ErrInvalidArgument)
		}
		key = SortBySize
	case byMtime:
		// bymtime from env or config, keep the default
	case v.IsSet("sort"):
		parsed, err := ParseSortKey(v.GetString("sort"))
		if err != nil {
			return Options{}, err
		}
		key = parsed
	}

	return Options{
		Directories: args,
		Human:       v.GetBool("human"),
		SortKey:     key,
		LogLevel:    v.GetString("log_level"),
	}, nil
}
