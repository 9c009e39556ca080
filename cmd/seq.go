package cmd

import (
	"os"
	"strings"

	"github.com/boxkit/boxkit/inline"
	"github.com/boxkit/boxkit/key"
	"github.com/boxkit/boxkit/sequence"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindInlineFlags registers the flags shared by seq and text.
func bindInlineFlags(cmd *cobra.Command, ops []string) {
	cmd.Flags().StringArrayP("op", "o", []string{}, "Operation to apply, as name or name=arg; repeatable")
	lo.Must0(cmd.RegisterFlagCompletionFunc("op", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeOps(ops, toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	cmd.Flags().BoolP("keep-going", "k", false, "Apply the remaining operations after one fails")
	cmd.SetOut(os.Stdout)
}

// completeOps suggests op names that fuzzily match what has been typed so far.
func completeOps(ops []string, toComplete string) []string {
	name, _, _ := strings.Cut(toComplete, "=")
	return fuzzy.FindFold(name, ops)
}

// inlineOptions builds inline.Options from flags, falling back to configured defaults.
func inlineOptions(cmd *cobra.Command) *inline.Options {
	ops, err := inline.ParseOps(lo.Must(cmd.Flags().GetStringArray("op")))
	handleErr(err)

	flagOr := func(name, configKey string) bool {
		if cmd.Flags().Changed(name) {
			return lo.Must(cmd.Flags().GetBool(name))
		}
		return viper.GetBool(configKey)
	}

	return &inline.Options{
		Out:       cmd.OutOrStdout(),
		Json:      flagOr("json", key.InlineJson),
		KeepGoing: flagOr("keep-going", key.InlineKeepGoing),
		Ops:       ops,
	}
}

func init() {
	rootCmd.AddCommand(seqCmd)
	bindInlineFlags(seqCmd, inline.SequenceOps())
}

var seqCmd = &cobra.Command{
	Use:   "seq [element]...",
	Short: "Apply operations to a sequence built from the given elements",
	Long: `Build a sequence from the positional arguments and apply each --op in order.

Operations:
  push=v         append v
  pop            remove and print the last element
  shift          remove and print the first element
  unshift=v      insert v at the front
  len            print the number of elements
  insert=i,v     insert v at index i (0 to len)
  delete=v       remove the first element equal to v
  slice=bound    print the selected elements; bound is n, start:stop or start:stop:step
  at=i           print the element at index i; negative counts from the end`,
	Example: `  boxkit seq -o push=e -o push=a -o push=6 -o push=g -o push=g -o pop
  boxkit seq a b c d -o slice=::-1 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(inline.RunSequence(sequence.From(args...), inlineOptions(cmd)))
	},
}
