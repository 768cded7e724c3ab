package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var batchFlags struct {
	mapName string
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Explore a map from every valid start and summarise repeated spaces",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchFlags.mapName, "map", "default", "Map to explore")
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if err := initServices(cmd.Context()); err != nil {
		return err
	}
	defer closeServices()

	summary, err := trialRunner.RunBatch(cmd.Context(), batchFlags.mapName)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Trials: %d, Total: %d, Min: %d, Max: %d, Average: %.2f, Incomplete: %d\n",
		summary.Trials, summary.Total, summary.Min, summary.Max, summary.Mean, summary.Incomplete)
	return nil
}
