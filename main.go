package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is the application version, set via ldflags.
var version string = "dev"

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the lsfiles command reading from fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "lsfiles DIRECTORY...",
		Short: "List directory contents recursively by file modification time or size",
		Long: `lsfiles walks one or more directories and prints the modification time,
size and path of every file found, newest (or largest) first.

Settings can also come from the environment or from a file given with --config.
Command-line flags take precedence over both:
  LSFILES_HUMAN=true       same as --human
  LSFILES_BYSIZE=true      same as --bysize
  LSFILES_BYMTIME=true     same as --bymtime
  LSFILES_SORT=mtime|size  sort key when no sort flag is set
  LSFILES_LOG_LEVEL=debug  same as --log-level`,
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// --- Configuration ---
			// Flags > env (LSFILES_*) > --config file > defaults
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}
			opts, err := resolveOptions(cmd, v, args)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), opts.LogLevel)
			if err != nil {
				return err
			}
			// Diagnostics go to stderr so stdout only carries the listing
			logger.Debug().
				Strs("directories", opts.Directories).
				Stringer("sort", opts.SortKey).
				Bool("human", opts.Human).
				Msg("starting listing")

			// --- Main Logic ---
			// Collect everything first; a traversal error means no output at all
			db, err := NewCollector(fs, logger).Collect(opts.Directories)
			if err != nil {
				return err
			}

			// --- Output Generation ---
			reporter := &Reporter{Key: opts.SortKey, Human: opts.Human}
			return reporter.Report(cmd.OutOrStdout(), db)
		},
	}

	bindFlags(cmd, v, &cfgFile)
	return cmd
}
