package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/tenfold/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tenfold",
	Short: "Practice multiplying and dividing by 10, 100 and 1000",
	Long: "Tenfold is a terminal drill for moving the decimal point. Tasks like\n" +
		"7,03 · 100 or 45 : 1000 are answered with a comma or a point, and a\n" +
		"session ends after a number of tasks or when the time is up.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addDrillFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// addDrillFlags registers the flags that override drill settings.
func addDrillFlags(f *pflag.FlagSet) {
	f.String("config", "", "Path to the TOML config file (overrides TENFOLD_CONFIG)")
	f.StringSlice("ops", nil, "Operations to drill: multiply, divide")
	f.IntSlice("factors", nil, "Factors to drill: 10, 100, 1000")
	f.String("difficulty", "", "Number type: whole, decimal or mixed")
	f.String("mode", "", "Session length mode: count or duration")
	f.Int("count", 0, "Number of tasks in count mode")
	f.Int("minutes", 0, "Minutes in duration mode")
	f.String("advance", "", "When to show a new task: on-correct, every-attempt or manual")
	f.Uint64("seed", 0, "Seed for reproducible tasks")
}

// resolveConfigPath returns the config path using --config (highest
// priority), then TENFOLD_CONFIG, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command, paths config.Paths) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return paths.ConfigFile
}

// applyFlags overrides settings with the flags the user actually passed.
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("ops") {
		s.Operations, _ = flags.GetStringSlice("ops")
	}
	if flags.Changed("factors") {
		s.Factors, _ = flags.GetIntSlice("factors")
	}
	if flags.Changed("difficulty") {
		s.Difficulty, _ = flags.GetString("difficulty")
	}
	if flags.Changed("mode") {
		s.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("count") {
		s.Count, _ = flags.GetInt("count")
		if !flags.Changed("mode") {
			s.Mode = "count"
		}
	}
	if flags.Changed("minutes") {
		s.Minutes, _ = flags.GetInt("minutes")
		if !flags.Changed("mode") {
			s.Mode = "duration"
		}
	}
	if flags.Changed("advance") {
		s.Advance, _ = flags.GetString("advance")
	}
}
