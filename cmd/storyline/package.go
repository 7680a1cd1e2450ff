package main

import (
	"github.com/spf13/cobra"

	"github.com/Biswa2Das/marketing-storyline/models"
)

var (
	packagePrompt   string
	packageTone     string
	packageLength   string
	packageAudience string
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Generate a full marketing storyline package",
	RunE: func(cmd *cobra.Command, args []string) error {
		stories := newStoryGenerator(pipelineCache())

		pkg, err := stories.Generate(cmd.Context(), &models.StorylineRequest{
			ProductPrompt: packagePrompt,
			Tone:          models.Tone(packageTone),
			Length:        models.Length(packageLength),
			Audience:      packageAudience,
		})
		if err != nil {
			return err
		}
		return printJSON(pkg)
	},
}

func init() {
	packageCmd.Flags().StringVarP(&packagePrompt, "prompt", "p", "", "Product description or marketing prompt")
	packageCmd.Flags().StringVarP(&packageTone, "tone", "t", "friendly", "Marketing tone (friendly, authoritative, playful, luxury, casual)")
	packageCmd.Flags().StringVarP(&packageLength, "length", "l", "medium", "Content length (short, medium, long)")
	packageCmd.Flags().StringVarP(&packageAudience, "audience", "a", "", "Target audience description")
	_ = packageCmd.MarkFlagRequired("prompt")
}
