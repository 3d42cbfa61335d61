package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clubgraph/clubgraph/client"
)

func newArticleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article",
		Short: "Article ingest and lookup commands",
	}
	cmd.AddCommand(articleAddCmd())
	cmd.AddCommand(articleGetCmd())
	cmd.AddCommand(articleDeleteCmd())
	return cmd
}

func articleAddCmd() *cobra.Command {
	var (
		flagFile    string
		flagID      string
		flagTitle   string
		flagCounty  string
		flagClubs   []string
		flagLeagues []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Ingest an article (from flags or a JSON file)",
		Run: func(cmd *cobra.Command, args []string) {
			req, err := buildIngestRequest(flagFile, flagID, flagTitle, flagCounty, flagClubs, flagLeagues)
			if err != nil {
				fatal("add", err)
			}
			result, err := apiClient.Articles.Create(context.Background(), req)
			if err != nil {
				fatal("add", err)
			}
			output(result, result.Article.ID)
		},
	}
	cmd.Flags().StringVar(&flagFile, "file", "", "JSON file with the ingest payload (use - for stdin)")
	cmd.Flags().StringVar(&flagID, "id", "", "Article ID (generated when empty)")
	cmd.Flags().StringVar(&flagTitle, "title", "", "Article title")
	cmd.Flags().StringVar(&flagCounty, "county", "", "Primary county")
	cmd.Flags().StringSliceVar(&flagClubs, "club", nil, "Club mention as name[:county[:league]] (repeatable)")
	cmd.Flags().StringSliceVar(&flagLeagues, "league", nil, "League mention (repeatable)")
	return cmd
}

// buildIngestRequest assembles the payload from a file or from flags.
func buildIngestRequest(file, id, title, county string, clubs, leagues []string) (*client.IngestArticleRequest, error) {
	if file != "" {
		var data []byte
		var err error
		if file == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("reading payload: %w", err)
		}
		var req client.IngestArticleRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("parsing payload: %w", err)
		}
		return &req, nil
	}

	req := &client.IngestArticleRequest{
		ID:    id,
		Title: title,
		Metadata: client.ArticleMetadata{
			PrimaryCounty: county,
			Leagues:       leagues,
		},
	}
	for _, raw := range clubs {
		parts := strings.SplitN(raw, ":", 3)
		club := client.Club{Name: parts[0]}
		if len(parts) > 1 {
			club.County = parts[1]
		}
		if len(parts) > 2 {
			club.League = parts[2]
		}
		req.Metadata.Clubs = append(req.Metadata.Clubs, club)
	}
	return req, nil
}

func articleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an article with its connections",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Articles.Get(context.Background(), args[0])
			if err != nil {
				fatal("get", err)
			}
			output(result, result.Article.ID)
		},
	}
}

func articleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an article and its edges",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Articles.Delete(context.Background(), args[0]); err != nil {
				fatal("delete", err)
			}
			output(map[string]bool{"deleted": true}, args[0])
		},
	}
}
