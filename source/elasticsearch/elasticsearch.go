// Package elasticsearch provides a paging.Source over an Elasticsearch
// index, using the _count API for the total and from/size for slices.
//
// Elasticsearch refuses from+size beyond index.max_result_window (10000 by
// default); traversals deeper than that fail with a source error.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// DefaultSort sorts in index order, the cheapest stable order.
const DefaultSort = "_doc"

// Option configures a Source.
type Option func(*Source)

// WithSort sets the sort terms, e.g. "created_at:desc", "_id".
func WithSort(terms ...string) Option {
	return func(s *Source) {
		if len(terms) > 0 {
			s.sort = terms
		}
	}
}

// Source pages through the documents matching a query. Items are the raw
// _source documents.
type Source struct {
	client *elasticsearch.Client
	index  string
	body   []byte
	sort   []string
}

// New returns a Source over index. query is the "query" clause; nil
// matches all documents.
func New(client *elasticsearch.Client, index string, query any, opts ...Option) (*Source, error) {
	raw := json.RawMessage(`{"match_all":{}}`)
	if query != nil {
		b, err := json.Marshal(query)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		raw = b
	}
	body, err := json.Marshal(map[string]json.RawMessage{"query": raw})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	s := &Source{client: client, index: index, body: body, sort: []string{DefaultSort}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// request returns a fresh reader over the search body for one call.
func (s *Source) request() io.Reader {
	return bytes.NewReader(s.body)
}

// Count returns the number of matching documents.
func (s *Source) Count(ctx context.Context) (int64, error) {
	res, err := s.client.Count(
		s.client.Count.WithContext(ctx),
		s.client.Count.WithIndex(s.index),
		s.client.Count.WithBody(s.request()),
	)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.index, err)
	}
	defer res.Body.Close()

	var out struct {
		Count int64 `json:"count"`
	}
	if err := decode(res, &out); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.index, err)
	}
	return out.Count, nil
}

// FetchSlice returns up to limit documents starting at offset.
func (s *Source) FetchSlice(ctx context.Context, offset, limit int64) ([]json.RawMessage, error) {
	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(s.request()),
		s.client.Search.WithFrom(int(offset)),
		s.client.Search.WithSize(int(limit)),
		s.client.Search.WithSort(s.sort...),
		s.client.Search.WithTrackTotalHits(false),
	)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", s.index, err)
	}
	defer res.Body.Close()

	var out struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := decode(res, &out); err != nil {
		return nil, fmt.Errorf("search %s: %w", s.index, err)
	}

	items := make([]json.RawMessage, 0, len(out.Hits.Hits))
	for _, hit := range out.Hits.Hits {
		items = append(items, hit.Source)
	}
	return items, nil
}

// decode reads a successful response body into v.
func decode(res *esapi.Response, v any) error {
	if res.IsError() {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
		return fmt.Errorf("status %d: %s", res.StatusCode, bytes.TrimSpace(body))
	}
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
