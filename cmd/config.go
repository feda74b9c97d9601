package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenfold/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings or create a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.LoadPaths()
		if err != nil {
			return err
		}
		path := resolveConfigPath(cmd, paths)

		if initFile, _ := cmd.Flags().GetBool("init"); initFile {
			force, _ := cmd.Flags().GetBool("force")
			if err := writeTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		}

		settings, err := config.Load(path)
		if err != nil {
			return err
		}
		applyFlags(cmd, &settings)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n", path)
		fmt.Fprintf(out, "Drill:       %s\n", settings.Describe())
		if policy, err := settings.AdvancePolicy(); err == nil {
			fmt.Fprintf(out, "After answer: %s\n", policy.DisplayName())
		}
		if err := settings.Validate(); err != nil {
			fmt.Fprintf(out, "Problem:     %v\n", err)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "Write a commented config file")
	configCmd.Flags().Bool("force", false, "Overwrite an existing config file with --init")
}

func writeTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check config file: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
