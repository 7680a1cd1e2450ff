package main

import (
	"github.com/spf13/cobra"

	"github.com/Biswa2Das/marketing-storyline/models"
)

var (
	extractPrompt string
	extractMax    int
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract ranked marketing features from a product description",
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor := newExtractor(pipelineCache())

		features, err := extractor.Extract(cmd.Context(), &models.ExtractRequest{
			ProductPrompt: extractPrompt,
			MaxFeatures:   models.Int(extractMax),
		})
		if err != nil {
			return err
		}
		return printJSON(features)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractPrompt, "prompt", "p", "", "Product description to analyze")
	extractCmd.Flags().IntVarP(&extractMax, "max", "n", models.DefaultMaxFeatures, "Maximum number of features to extract")
	_ = extractCmd.MarkFlagRequired("prompt")
}
