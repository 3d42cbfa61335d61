package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clubgraph/clubgraph/client"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Distance and relevance commands",
	}
	cmd.AddCommand(graphDistanceCmd())
	cmd.AddCommand(graphRelatedCmd())
	cmd.AddCommand(graphScoreCmd())
	return cmd
}

func graphDistanceCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "distance <from> <to>",
		Short: "Shortest path between two articles",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Graph.Distance(context.Background(), args[0], args[1], &client.DistanceOptions{Mode: mode})
			if err != nil {
				fatal("distance", err)
			}
			output(result, "")
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "Distance mode: weighted|unweighted")
	return cmd
}

func graphRelatedCmd() *cobra.Command {
	var (
		mode string
		max  float64
	)
	cmd := &cobra.Command{
		Use:   "related <id>",
		Short: "Articles near the given one, bucketed by distance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Graph.Related(context.Background(), args[0], &client.DistanceOptions{Mode: mode, MaxDistance: max})
			if err != nil {
				fatal("related", err)
			}
			output(result, "")
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "Distance mode: weighted|unweighted")
	cmd.Flags().Float64Var(&max, "max", 0, "Max distance (server default when 0)")
	return cmd
}

func graphScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <from> <to>",
		Short: "Relevance score between two articles",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			score, err := apiClient.Graph.Score(context.Background(), args[0], args[1])
			if err != nil {
				fatal("score", err)
			}
			output(map[string]float64{"score": score}, fmt.Sprintf("%g", score))
		},
	}
}
