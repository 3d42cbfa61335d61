package client

import (
	"context"
	"net/url"
	"strconv"
)

// GraphService handles distance and relevance queries.
type GraphService struct {
	c *Client
}

// DistanceOptions tunes a distance or related-articles query.
type DistanceOptions struct {
	// Mode is "weighted" (default) or "unweighted".
	Mode string
	// MaxDistance bounds a Related query; zero uses the server default.
	MaxDistance float64
}

// Distance computes the shortest path between two articles.
func (s *GraphService) Distance(ctx context.Context, fromID, toID string, opts *DistanceOptions) (*DistanceResult, error) {
	params := url.Values{}
	if opts != nil && opts.Mode != "" {
		params.Set("mode", opts.Mode)
	}

	path := "/api/v1/graph/distance/" + url.PathEscape(fromID) + "/" + url.PathEscape(toID)

	var result DistanceResult
	if err := s.c.get(ctx, path, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Related returns articles near the given one, bucketed by distance level.
func (s *GraphService) Related(ctx context.Context, id string, opts *DistanceOptions) (*RelatedResult, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Mode != "" {
			params.Set("mode", opts.Mode)
		}
		if opts.MaxDistance > 0 {
			params.Set("max", strconv.FormatFloat(opts.MaxDistance, 'f', -1, 64))
		}
	}

	var result RelatedResult
	if err := s.c.get(ctx, "/api/v1/graph/related/"+url.PathEscape(id), params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Score returns the relevance score between two articles. Absent or
// unreachable articles score 0.
func (s *GraphService) Score(ctx context.Context, fromID, toID string) (float64, error) {
	path := "/api/v1/graph/score/" + url.PathEscape(fromID) + "/" + url.PathEscape(toID)

	var result ScoreResult
	if err := s.c.get(ctx, path, nil, &result); err != nil {
		return 0, err
	}
	return result.Score, nil
}
