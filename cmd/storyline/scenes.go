package main

import (
	"github.com/spf13/cobra"

	"github.com/Biswa2Das/marketing-storyline/models"
	"github.com/Biswa2Das/marketing-storyline/processing"
)

var (
	scenesIn     string
	scenesCount  int
	scenesLength string
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Generate a video scene breakdown from a storyline snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		storyline, err := models.LoadStoryline(scenesIn)
		if err != nil {
			return err
		}

		generator := processing.NewSceneGenerator(client, cfg, pipelineCache())
		scenes, err := generator.Generate(cmd.Context(), &models.SceneRequest{
			Storyline:   *storyline,
			NumScenes:   scenesCount,
			VideoLength: scenesLength,
		})
		if err != nil {
			return err
		}

		return printJSON(map[string]interface{}{"scenes": scenes})
	},
}

func init() {
	scenesCmd.Flags().StringVarP(&scenesIn, "in", "i", "storyline.json", "Storyline snapshot to read")
	scenesCmd.Flags().IntVarP(&scenesCount, "num-scenes", "n", 4, "Number of scenes to request (2-8)")
	scenesCmd.Flags().StringVarP(&scenesLength, "video-length", "l", "15-second", "Target commercial length label")
}
