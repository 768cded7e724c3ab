package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/spf13/cobra"
)

var runFlags struct {
	mapName string
	x, y    int
	trace   bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Explore a map once and print the trial",
	RunE:  runTrial,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.mapName, "map", "default", "Map to explore")
	f.IntVar(&runFlags.x, "x", 0, "Start column (defaults to the map's suggested start)")
	f.IntVar(&runFlags.y, "y", 0, "Start row")
	f.BoolVar(&runFlags.trace, "trace", false, "Print every visited coordinate")

	runCmd.MarkFlagsRequiredTogether("x", "y")
}

func runTrial(cmd *cobra.Command, _ []string) error {
	if err := initServices(cmd.Context()); err != nil {
		return err
	}
	defer closeServices()

	var start *explorer.Coordinate
	if cmd.Flags().Changed("x") {
		start = &explorer.Coordinate{X: runFlags.x, Y: runFlags.y}
	}

	trial, err := trialRunner.Run(cmd.Context(), runFlags.mapName, start)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Trial:     %s\n", trial.ID)
	fmt.Fprintf(out, "Map:       %s\n", trial.MapName)
	fmt.Fprintf(out, "Start:     %s\n", trial.Start)
	fmt.Fprintf(out, "Steps:     %d\n", trial.Steps)
	fmt.Fprintf(out, "Repeated:  %d\n", trial.RepeatedSpaces)
	fmt.Fprintf(out, "Visited:   %d/%d\n", trial.Visited, trial.Reachable)
	fmt.Fprintf(out, "Complete:  %t\n", trial.Complete)
	if runFlags.trace {
		fmt.Fprintf(out, "Trace:")
		for _, c := range trial.Trace {
			fmt.Fprintf(out, " %s", c)
		}
		fmt.Fprintln(out)
	}
	return nil
}
