package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acronymcreator/internal/config"
	"acronymcreator/internal/logging"
)

// newConfigCmd groups config file management. It skips the root setup hook
// so a broken config file can still be replaced.
func newConfigCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the acronymcreator config file",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(config.DefaultConfig().Logging, st.verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			st.logger = logger
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd(st))
	return cmd
}

func newConfigInitCmd(st *cliState) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the built-in defaults",
		Long: `Writes the built-in defaults to the config file, creating parent
directories as needed. The path is --config, else $` + config.EnvConfigPath + `,
else the user config directory. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := st.configPath
			if path == "" {
				path = config.DefaultPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite): %w", path, fs.ErrExist)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to check config %s: %w", path, err)
			}

			if err := config.DefaultConfig().Save(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			logging.For(st.logger, logging.CategoryBoot).Debug("Config written",
				zap.String("path", path),
				zap.Bool("force", force))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
