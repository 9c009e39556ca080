package cmd

import (
	"os"

	"github.com/boxkit/boxkit/inline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.SetOut(os.Stdout)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Push e, a, 6, g, g onto an empty sequence, pop once and print it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(inline.Demo(cmd.OutOrStdout()))
	},
}
