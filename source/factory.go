// Package source builds the paging.Source named by configuration from the
// connections opened by the data package.
package source

import (
	"encoding/json"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/ncobase/sqlpage/data"
	"github.com/ncobase/sqlpage/paging"
	"github.com/ncobase/sqlpage/source/elasticsearch"
	"github.com/ncobase/sqlpage/source/meilisearch"
	"github.com/ncobase/sqlpage/source/memory"
	"github.com/ncobase/sqlpage/source/mongodb"
	"github.com/ncobase/sqlpage/source/redis"
	"github.com/ncobase/sqlpage/source/sqldb"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotConnected is returned when the configured kind has no open connection.
var ErrNotConnected = errors.New("source backend not connected")

// Open returns the source described by cfg, reading through the matching
// connection in d.
func Open(cfg *Config, d *data.Data) (paging.Source[any], error) {
	if cfg == nil {
		return nil, errors.New("source config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if d == nil {
		d = &data.Data{}
	}
	sort, err := parseSort(cfg.Sort)
	if err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case KindMemory:
		return Any[int](memory.New(memory.Seq(cfg.Size))), nil
	case KindSQL:
		return openSQL(cfg, sort, d)
	case KindMongoDB:
		return openMongo(cfg, sort, d)
	case KindRedis:
		return openRedis(cfg, d)
	case KindElasticsearch:
		return openElasticsearch(cfg, sort, d)
	case KindMeilisearch:
		return openMeilisearch(cfg, sort, d)
	}
	return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
}

func openSQL(cfg *Config, sort []sortTerm, d *data.Data) (paging.Source[any], error) {
	if d.DB == nil {
		return nil, fmt.Errorf("%w: database", ErrNotConnected)
	}
	opts := []sqldb.Option{sqldb.WithColumns(cfg.Columns...)}
	if len(sort) > 0 {
		terms := make([]string, len(sort))
		for i, t := range sort {
			terms[i] = entsql.Asc(t.field)
			if t.desc {
				terms[i] = entsql.Desc(t.field)
			}
		}
		opts = append(opts, sqldb.WithOrderBy(terms...))
	}
	if cfg.Where != "" {
		opts = append(opts, sqldb.WithWhere(entsql.ExprP(cfg.Where)))
	}
	return Any[sqldb.Row](sqldb.New(d.DB, d.Dialect, cfg.Table, opts...)), nil
}

func openMongo(cfg *Config, sort []sortTerm, d *data.Data) (paging.Source[any], error) {
	if d.Mongo == nil {
		return nil, fmt.Errorf("%w: mongodb", ErrNotConnected)
	}
	if d.MongoDatabase == "" {
		return nil, errors.New("mongodb database name is empty")
	}
	filter := bson.D{}
	if cfg.Filter != "" {
		if err := bson.UnmarshalExtJSON([]byte(cfg.Filter), false, &filter); err != nil {
			return nil, fmt.Errorf("invalid mongodb filter: %w", err)
		}
	}
	var opts []mongodb.Option
	if len(sort) > 0 {
		doc := make(bson.D, len(sort))
		for i, t := range sort {
			dir := 1
			if t.desc {
				dir = -1
			}
			doc[i] = bson.E{Key: t.field, Value: dir}
		}
		opts = append(opts, mongodb.WithSort(doc))
	}
	coll := d.Mongo.Database(d.MongoDatabase).Collection(cfg.Collection)
	return Any[bson.M](mongodb.New[bson.M](coll, filter, opts...)), nil
}

func openRedis(cfg *Config, d *data.Data) (paging.Source[any], error) {
	if d.Redis == nil {
		return nil, fmt.Errorf("%w: redis", ErrNotConnected)
	}
	if cfg.Structure == StructureZSet {
		return Any[string](redis.NewSortedSet(d.Redis, cfg.Key)), nil
	}
	return Any[string](redis.NewList(d.Redis, cfg.Key)), nil
}

// searchSort renders terms in the "field:dir" form both search engines use.
func searchSort(sort []sortTerm) []string {
	out := make([]string, len(sort))
	for i, t := range sort {
		out[i] = t.field + ":asc"
		if t.desc {
			out[i] = t.field + ":desc"
		}
	}
	return out
}

func openElasticsearch(cfg *Config, sort []sortTerm, d *data.Data) (paging.Source[any], error) {
	if d.Elasticsearch == nil {
		return nil, fmt.Errorf("%w: elasticsearch", ErrNotConnected)
	}
	var query any
	if cfg.Query != "" {
		if !json.Valid([]byte(cfg.Query)) {
			return nil, errors.New("invalid elasticsearch query: not JSON")
		}
		query = json.RawMessage(cfg.Query)
	}
	src, err := elasticsearch.New(d.Elasticsearch, cfg.Index, query, elasticsearch.WithSort(searchSort(sort)...))
	if err != nil {
		return nil, err
	}
	return Any[json.RawMessage](src), nil
}

func openMeilisearch(cfg *Config, sort []sortTerm, d *data.Data) (paging.Source[any], error) {
	if d.Meilisearch == nil {
		return nil, fmt.Errorf("%w: meilisearch", ErrNotConnected)
	}
	opts := []meilisearch.Option{}
	if cfg.Filter != "" {
		opts = append(opts, meilisearch.WithFilter(cfg.Filter))
	}
	if len(sort) > 0 {
		opts = append(opts, meilisearch.WithSort(searchSort(sort)...))
	}
	return Any[json.RawMessage](meilisearch.New(d.Meilisearch, cfg.Index, cfg.Query, opts...)), nil
}
