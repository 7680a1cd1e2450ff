package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	storylinePrompt string
	storylineOut    string
)

var storylineCmd = &cobra.Command{
	Use:   "storyline",
	Short: "Generate a tagline/narrative storyline and save it as a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		stories := newStoryGenerator(pipelineCache())

		storyline, err := stories.GenerateStoryline(cmd.Context(), storylinePrompt)
		if err != nil {
			return err
		}

		if err := storyline.Save(storylineOut); err != nil {
			return err
		}
		fmt.Printf("Storyline saved to %s\n", storylineOut)
		return printJSON(storyline)
	},
}

func init() {
	storylineCmd.Flags().StringVarP(&storylinePrompt, "prompt", "p", "", "Product description or marketing prompt")
	storylineCmd.Flags().StringVarP(&storylineOut, "out", "o", "storyline.json", "Path for the storyline snapshot")
	_ = storylineCmd.MarkFlagRequired("prompt")
}
