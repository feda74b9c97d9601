package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a drill in plain text mode",
	Long: "Run a drill on standard input and output. Menus ask for the\n" +
		"operations, factors, number type and session length unless --quick\n" +
		"is given, in which case the configured settings are used as they are.",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, closeLog, err := prepare(cmd)
		if err != nil {
			return err
		}
		defer closeLog()

		quick, _ := cmd.Flags().GetBool("quick")
		return runConsole(cmd.Context(), settings, newGenerator(cmd), quick)
	},
}

func init() {
	playCmd.Flags().BoolP("quick", "q", false, "Skip the menus and start right away")
}
