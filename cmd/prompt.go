package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/abhisek/paomind/internal/custom"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt for generating a PAO system with an AI assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		copyIt, _ := cmd.Flags().GetBool("copy")
		generate, _ := cmd.Flags().GetBool("generate")

		prompt := custom.Prompt()
		if !generate {
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			if copyIt {
				if err := clipboard.WriteAll(prompt); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(os.Stderr, "Prompt copied to clipboard.")
			}
			return nil
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		gen, err := newGenerator(ctxOf(cmd), e)
		if err != nil {
			return err
		}
		if gen == nil {
			return errors.New("no AI provider configured: set llm.provider or an API key such as ANTHROPIC_API_KEY")
		}

		fmt.Fprintf(os.Stderr, "Generating with %s...\n", gen.Model())
		res, err := gen.Generate(ctxOf(cmd))
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		n, err := e.custom.Import(ctxOf(cmd), custom.PrefixCreated, res.Items)
		if err != nil {
			return fmt.Errorf("import generated items: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s. Imported %d items.\n", res.Summary(), n)
		return nil
	},
}

func init() {
	promptCmd.Flags().Bool("copy", false, "Also copy the prompt to the clipboard")
	promptCmd.Flags().Bool("generate", false, "Send the prompt to the configured LLM provider and import the reply")
}
