package cmd

import (
	"github.com/boxkit/boxkit/inline"
	"github.com/boxkit/boxkit/text"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(textCmd)
	bindInlineFlags(textCmd, inline.TextOps())
}

var textCmd = &cobra.Command{
	Use:   "text <value>",
	Short: "Apply operations to a text value",
	Long: `Wrap the positional argument as text and apply each --op in order.
The text itself never changes; every operation prints a derived value.

Operations:
  concat=v       print the text followed by v
  substring=b    print the selected characters; b is n, start:stop or start:stop:step
  len            print the number of characters
  indexof=v      print the index of the first occurrence of v, or -1`,
	Example: `  boxkit text hello -o indexof=ll -o substring=1:3`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(inline.RunText(text.New(args[0]), inlineOptions(cmd)))
	},
}
