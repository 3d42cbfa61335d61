package client

import (
	"context"
	"net/url"
)

// ArticleService handles article lifecycle operations.
type ArticleService struct {
	c *Client
}

// Create ingests a new article and returns it with its direct connections.
func (s *ArticleService) Create(ctx context.Context, req *IngestArticleRequest) (*IngestResult, error) {
	var result IngestResult
	if err := s.c.post(ctx, "/api/v1/articles", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns an article with its direct neighbor list.
func (s *ArticleService) Get(ctx context.Context, id string) (*ArticleContext, error) {
	var result ArticleContext
	if err := s.c.get(ctx, "/api/v1/articles/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes an article and every edge incident to it.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/articles/"+url.PathEscape(id), nil)
}
