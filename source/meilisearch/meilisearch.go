// Package meilisearch provides a paging.Source over a Meilisearch index.
//
// The total comes from an exhaustive search (page/hitsPerPage), which
// reports totalHits exactly; slices use offset/limit. Meilisearch caps the
// reachable window with the index's pagination.maxTotalHits setting.
package meilisearch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meilisearch/meilisearch-go"
)

// Option configures a Source.
type Option func(*Source)

// WithFilter sets the search filter expression.
func WithFilter(filter any) Option {
	return func(s *Source) {
		s.filter = filter
	}
}

// WithSort sets the sort rules, e.g. "created_at:desc". The attributes
// must be sortable in the index settings.
func WithSort(rules ...string) Option {
	return func(s *Source) {
		s.sort = rules
	}
}

// Source pages through the hits of a search. Items are the raw hits.
type Source struct {
	index  meilisearch.IndexManager
	uid    string
	query  string
	filter any
	sort   []string
}

// New returns a Source over the hits of query in index.
func New(client meilisearch.ServiceManager, index, query string, opts ...Option) *Source {
	s := &Source{index: client.Index(index), uid: index, query: query}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type searchResult struct {
	Hits      []json.RawMessage `json:"hits"`
	TotalHits int64             `json:"totalHits"`
}

func (s *Source) search(ctx context.Context, req *meilisearch.SearchRequest) (*searchResult, error) {
	req.Filter = s.filter
	req.Sort = s.sort
	raw, err := s.index.SearchRawWithContext(ctx, s.query, req)
	if err != nil {
		return nil, err
	}
	var out searchResult
	if raw != nil {
		if err := json.Unmarshal(*raw, &out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return &out, nil
}

// Count returns the exact number of hits.
func (s *Source) Count(ctx context.Context) (int64, error) {
	res, err := s.search(ctx, &meilisearch.SearchRequest{Page: 1, HitsPerPage: 1})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.uid, err)
	}
	return res.TotalHits, nil
}

// FetchSlice returns up to limit hits starting at offset.
func (s *Source) FetchSlice(ctx context.Context, offset, limit int64) ([]json.RawMessage, error) {
	res, err := s.search(ctx, &meilisearch.SearchRequest{Offset: offset, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", s.uid, err)
	}
	if res.Hits == nil {
		return []json.RawMessage{}, nil
	}
	return res.Hits, nil
}
