// Package app composes configuration, logging, persistence and the console
// into the stockroom command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stockroom/pkg/config"
	"stockroom/pkg/console"
	"stockroom/pkg/inventory"
	"stockroom/pkg/logging"
	"stockroom/pkg/storage/textfile"
	"stockroom/pkg/version"
)

// options captures CLI flags; they take precedence over the config file.
type options struct {
	configPath string
	dataFile   string
	verbose    bool
}

// Run executes the stockroom command with args, talking to the operator
// through in and out.
func Run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	cmd := NewCommand(in, out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewCommand builds the root command. Without flags it loads inventory.txt
// from the working directory and starts the menu.
func NewCommand(in io.Reader, out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "stockroom",
		Short: "Interactive inventory tracker backed by a flat text file",
		Long: `stockroom keeps an inventory of items (id, name, quantity, price) in memory
and lets an operator add, view, search, update, delete and export them from a
numbered menu. The inventory is loaded from the data file at startup and
written back only when exported.`,
		Version:       version.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, in, out)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&opts.dataFile, "file", "f", "", "inventory data file (default \"inventory.txt\")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newInitConfigCommand(&opts, out))
	return cmd
}

// newInitConfigCommand writes the effective configuration, defaults merged
// with --config and flag overrides, so operators can start from a full file.
func newInitConfigCommand(opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the effective configuration to a YAML file",
		Long: `Writes the configuration stockroom would run with to path. Without a path the
file named by --config is used, and stockroom.yaml when that is empty too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*opts)
			if err != nil {
				return err
			}

			path := config.DefaultConfigFile
			switch {
			case len(args) == 1:
				path = args[0]
			case opts.configPath != "":
				path = opts.configPath
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(out, "Configuration written to %s\n", path)
			return nil
		},
	}
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := inventory.NewStore()
	repo := textfile.NewRepository(cfg.DataFile, logger)
	if err := loadInventory(store, repo, out, logger); err != nil {
		return err
	}

	c := console.New(store, repo,
		console.WithInput(in),
		console.WithOutput(out),
		console.WithLogger(logger),
	)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Debug("session finished", zap.Int("items", store.Len()))
	return nil
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadInventory(store *inventory.Store, repo *textfile.Repository, out io.Writer, logger *zap.Logger) error {
	items, found, err := repo.Load()
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(out, "No previous inventory file found. Starting fresh.")
		return nil
	}
	if skipped := store.Replace(items); skipped > 0 {
		logger.Warn("ignored invalid items", zap.String("path", repo.Path()), zap.Int("skipped", skipped))
	}
	logger.Info("inventory ready", zap.String("path", repo.Path()), zap.Int("items", store.Len()))
	return nil
}
