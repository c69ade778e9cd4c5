package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/practice"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <person#> <action#> <object#>",
	Short: "Resolve three numbers to a PAO triple and tell its story",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		in := pao.NumberInputs{Person: args[0], Action: args[1], Object: args[2]}
		triple := pao.NewResolver(pao.Default(), e.custom).Resolve(in)

		out := cmd.OutOrStdout()
		for _, k := range pao.Kinds() {
			f := triple.Field(k)
			fmt.Fprintf(out, "%-7s %-3s %s\n", k.Label()+":", in.Input(k), f.Display())
		}
		fmt.Fprintln(out)

		story, ok := pao.NewStoryteller(practice.NewRand()).Tell(triple)
		if !ok {
			fmt.Fprintln(out, pao.StoryPlaceholder)
			return nil
		}
		fmt.Fprintln(out, story)
		return nil
	},
}
