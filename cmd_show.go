package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showFlags struct {
	mapName string
	list    bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw a map, or list the known maps",
	RunE:  runShow,
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showFlags.mapName, "map", "default", "Map to draw")
	f.BoolVar(&showFlags.list, "list", false, "List map names instead")
}

func runShow(cmd *cobra.Command, _ []string) error {
	if err := initCatalog(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showFlags.list {
		for _, name := range mapCatalog.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	m, layout, err := mapCatalog.Map(showFlags.mapName)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%dx%d, %d valid starts)\n", layout.Name, m.Width, m.Height, len(m.SpawnPoints()))
	if layout.Start != nil {
		fmt.Fprintf(out, "Suggested start: %s\n", *layout.Start)
	}
	fmt.Fprint(out, m.String())
	return nil
}
