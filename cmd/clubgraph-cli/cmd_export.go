package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Aggregate graph statistics",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Stats(context.Background())
			if err != nil {
				fatal("stats", err)
			}
			output(stats, fmt.Sprintf("%d", stats.Articles))
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the full graph snapshot as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			export, err := apiClient.Export(context.Background())
			if err != nil {
				fatal("export", err)
			}
			formatJSON(export)
		},
	}
}

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Snapshot archive commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Archive the current graph snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			info, err := apiClient.Archive.Save(context.Background())
			if err != nil {
				fatal("archive save", err)
			}
			output(info, fmt.Sprintf("%d", info.ID))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "latest",
		Short: "Fetch the most recent archived snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			export, info, err := apiClient.Archive.Latest(context.Background())
			if err != nil {
				fatal("archive latest", err)
			}
			output(map[string]any{"info": info, "snapshot": export}, fmt.Sprintf("%d", info.ID))
		},
	})
	return cmd
}
