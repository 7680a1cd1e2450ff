// Command storyline runs the generation pipelines from the terminal, so
// the storyline and scene stages can be run separately with a JSON snapshot
// handed between them.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Biswa2Das/marketing-storyline/cache"
	"github.com/Biswa2Das/marketing-storyline/config"
	"github.com/Biswa2Das/marketing-storyline/llm"
	"github.com/Biswa2Das/marketing-storyline/processing"
)

var (
	cfg    *config.Config
	client llm.Client

	flagModel string
)

var rootCmd = &cobra.Command{
	Use:   "storyline",
	Short: "Generate marketing storylines and video scene breakdowns with an LLM",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if flagModel != "" {
			cfg.Model = flagModel
		}
		var err error
		client, err = llm.NewClient(cfg)
		if err != nil {
			return err
		}
		if cfg.Provider == "ollama" {
			if err := client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("local backend pre-flight failed: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Override the configured model")
	rootCmd.AddCommand(extractCmd, storylineCmd, scenesCmd, packageCmd)
}

func pipelineCache() cache.Cache {
	if !cfg.CacheEnabled {
		return nil
	}
	return cache.NewMemory(cfg.CacheMaxSize, cfg.CacheTTL)
}

func newExtractor(c cache.Cache) *processing.FeatureExtractor {
	return processing.NewFeatureExtractor(client, cfg, c)
}

func newStoryGenerator(c cache.Cache) *processing.StoryGenerator {
	return processing.NewStoryGenerator(client, cfg, c, newExtractor(c))
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
