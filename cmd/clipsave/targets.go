package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipsave/internal/clip"
	"go.klb.dev/clipsave/internal/export"
)

func newTargetsCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the type identifiers the clipboard currently advertises",
		Long: `Enumerates the clipboard's advertised type identifiers and prints one
per line, marking the one the save run would select. Useful for
diagnosing why a save run reports an unsupported format.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runTargets(v) },
	}

	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runTargets(v *viper.Viper) error {
	setupLogging(v)

	backend := clip.New()
	defer backend.Close()

	targets := backend.Targets()
	if len(targets) == 0 {
		fmt.Println("Clipboard is empty or contains an unsupported format.")
		return nil
	}

	selected, _ := export.SelectTarget(targets)
	for _, t := range targets {
		marker := " "
		if t == selected {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, t)
	}
	return nil
}
